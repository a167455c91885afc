package charm

// nodeIDCounter is a plain counter (no atomic; charm is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a minimal animatable display object. A single flat struct carries
// every property the built-in tweens touch, so it satisfies Target without
// any adapter.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64

	// Visibility
	Alpha   float64
	Visible bool

	// Metadata
	UserData any

	disposed bool
}

// NewNode creates a node with unit scale and full alpha.
func NewNode(name string) *Node {
	return &Node{
		ID:      nextNodeID(),
		Name:    name,
		ScaleX:  1,
		ScaleY:  1,
		Alpha:   1,
		Visible: true,
	}
}

// Get returns the named property. Unknown names read as 0.
func (n *Node) Get(name string) float64 {
	if p := n.field(name); p != nil {
		return *p
	}
	warnUnknownProperty("node", name)
	return 0
}

// Set writes the named property. Unknown names are ignored.
func (n *Node) Set(name string, value float64) {
	if p := n.field(name); p != nil {
		*p = value
		return
	}
	warnUnknownProperty("node", name)
}

func (n *Node) field(name string) *float64 {
	switch name {
	case PropX:
		return &n.X
	case PropY:
		return &n.Y
	case PropScaleX:
		return &n.ScaleX
	case PropScaleY:
		return &n.ScaleY
	case PropRotation:
		return &n.Rotation
	case PropAlpha:
		return &n.Alpha
	}
	return nil
}

// Position returns the node's position as a Vec2.
func (n *Node) Position() Vec2 {
	return Vec2{n.X, n.Y}
}

// Dispose marks the node as disposed. Tweens targeting it stop on their next step.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.disposed = true
	n.ID = 0
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}
