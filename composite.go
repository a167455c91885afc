package charm

// TweenSpec holds the arguments of one TweenProperty call.
type TweenSpec struct {
	Target   Target
	Property string
	From, To float64
	Frames   int
	Options  TweenOptions
}

// Composite groups tweens that are played, paused and reported complete
// together.
type Composite struct {
	Tweens []*Tween

	// OnComplete runs once every member has completed once. The count resets
	// afterwards, so yoyo members fire it once per full cycle.
	OnComplete func()

	completed int
}

// MakeTween starts one tween per spec, in order, and groups them.
func (e *Engine) MakeTween(specs ...TweenSpec) *Composite {
	c := &Composite{Tweens: make([]*Tween, 0, len(specs))}
	for _, s := range specs {
		t := e.TweenProperty(s.Target, s.Property, s.From, s.To, s.Frames, s.Options)
		t.OnComplete = c.memberDone
		c.Tweens = append(c.Tweens, t)
	}
	return c
}

func (c *Composite) memberDone() {
	c.completed++
	if c.completed < len(c.Tweens) {
		return
	}
	c.completed = 0
	if c.OnComplete != nil {
		c.OnComplete()
	}
}

// Play resumes every member.
func (c *Composite) Play() {
	for _, t := range c.Tweens {
		t.Play()
	}
}

// Pause pauses every member.
func (c *Composite) Pause() {
	for _, t := range c.Tweens {
		t.Pause()
	}
}

// Playing reports whether any member is playing.
func (c *Composite) Playing() bool {
	for _, t := range c.Tweens {
		if t.Playing() {
			return true
		}
	}
	return false
}

func (c *Composite) stop() {
	for _, t := range c.Tweens {
		t.stop()
	}
}

func (c *Composite) registered() bool {
	for _, t := range c.Tweens {
		if t.registered() {
			return true
		}
	}
	return false
}
