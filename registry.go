package charm

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// stepper is anything the registry advances once per frame.
type stepper interface {
	step()
	stop()
}

type registryEntry struct {
	id   uint64
	s    stepper
	live bool
}

// registry is the ordered set of steppers eligible for advancement. Ids are
// never reused. Removal during a pass only marks the entry dead; the slice is
// compacted once the pass ends.
type registry struct {
	entries   []*registryEntry
	index     *intmap.Map[uint64, *registryEntry]
	nextID    uint64
	iterating bool
	dirty     bool
}

func newRegistry() *registry {
	return &registry{index: intmap.New[uint64, *registryEntry](64)}
}

func (r *registry) add(s stepper) uint64 {
	r.nextID++
	e := &registryEntry{id: r.nextID, s: s, live: true}
	r.entries = append(r.entries, e)
	r.index.Put(e.id, e)
	return e.id
}

// remove deregisters id. Unknown or already removed ids are a no-op.
func (r *registry) remove(id uint64) bool {
	if id == 0 {
		return false
	}
	e, ok := r.index.Get(id)
	if !ok {
		return false
	}
	r.index.Del(id)
	e.live = false
	e.s = nil
	if r.iterating {
		r.dirty = true
	} else {
		r.compact()
	}
	return true
}

func (r *registry) has(id uint64) bool {
	if id == 0 {
		return false
	}
	_, ok := r.index.Get(id)
	return ok
}

func (r *registry) len() int {
	return r.index.Len()
}

// update steps every live entry from the highest index down. Entries added
// during the pass are first stepped on the next pass.
func (r *registry) update() {
	r.iterating = true
	for i := len(r.entries) - 1; i >= 0; i-- {
		e := r.entries[i]
		if e.live {
			e.s.step()
		}
	}
	r.iterating = false
	if r.dirty {
		r.compact()
	}
}

func (r *registry) compact() {
	r.entries = slices.DeleteFunc(r.entries, func(e *registryEntry) bool {
		return !e.live
	})
	r.dirty = false
}

// removeAll deregisters every entry in one go and returns the steppers that
// were live, in registration order. During a pass the dead entries are left
// for the compaction at the end of it.
func (r *registry) removeAll() []stepper {
	out := make([]stepper, 0, r.len())
	for _, e := range r.entries {
		if e.live {
			out = append(out, e.s)
			e.live = false
			e.s = nil
		}
	}
	r.index = intmap.New[uint64, *registryEntry](64)
	if r.iterating {
		r.dirty = true
		return out
	}
	clear(r.entries)
	r.entries = r.entries[:0]
	r.dirty = false
	return out
}
