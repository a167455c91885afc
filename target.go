package charm

import (
	"log"
	"sync"
)

// Target is anything whose numeric properties can be animated by name.
// The engine never creates or destroys targets.
type Target interface {
	Get(name string) float64
	Set(name string, value float64)
}

// disposable is implemented by targets that can be torn down while a tween
// still refers to them. Tweens stop without writing once it reports true.
type disposable interface {
	IsDisposed() bool
}

func targetDisposed(t Target) bool {
	d, ok := t.(disposable)
	return ok && d.IsDisposed()
}

// Props is a map-backed Target. Missing properties read as 0 and are created
// on first Set.
type Props map[string]float64

// Get returns the named property.
func (p Props) Get(name string) float64 { return p[name] }

// Set stores the named property.
func (p Props) Set(name string, value float64) { p[name] = value }

// Fields is a Target that forwards each name to a float64 owned elsewhere. It
// is the adapter shape for hosts whose native layout differs from flat fields:
//
//	charm.Fields{
//		charm.PropX:      &sprite.Pos.X,
//		charm.PropScaleX: &sprite.Scale.X,
//	}
type Fields map[string]*float64

// Get returns the value behind the named pointer, or 0 when the name is unmapped.
func (f Fields) Get(name string) float64 {
	if p := f[name]; p != nil {
		return *p
	}
	warnUnknownProperty("fields", name)
	return 0
}

// Set writes through the named pointer. Unmapped names are ignored.
func (f Fields) Set(name string, value float64) {
	if p := f[name]; p != nil {
		*p = value
		return
	}
	warnUnknownProperty("fields", name)
}

var (
	warnedMu    sync.Mutex
	warnedProps = map[string]bool{}
)

// warnUnknownProperty logs the first access to an unknown property per owner kind.
func warnUnknownProperty(owner, name string) {
	key := owner + "." + name
	warnedMu.Lock()
	defer warnedMu.Unlock()
	if warnedProps[key] {
		return
	}
	warnedProps[key] = true
	log.Printf("charm: %s has no property %q, reading 0 and ignoring writes", owner, name)
}
