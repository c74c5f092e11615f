package class

import (
	"fmt"

	"src.lunekit.org/pkg/logutil"
)

var logger = logutil.GetLogger("[class] ")

// Handle is a host handle to a registered instance. Handles are weak
// by themselves: holding one does not keep the instance alive, and a
// handle to a collected instance simply fails to resolve. The zero
// Handle never resolves.
type Handle struct {
	id uint64
}

// Valid reports whether the handle was ever issued by a runtime. It
// does not imply the instance is still alive; use Runtime.Resolve for
// that.
func (h Handle) Valid() bool { return h.id != 0 }

type slot struct {
	inst Instance
	refs int
}

// Runtime is the host's object registry. It owns the mapping from
// handles to live instances and drives collection: an instance is
// collected when its reference count drops to zero.
type Runtime struct {
	slots  map[uint64]*slot
	nextID uint64
}

// NewRuntime creates an empty runtime.
func NewRuntime() *Runtime {
	return &Runtime{slots: make(map[uint64]*slot)}
}

// Construct allocates an instance of c, registers it with one
// reference, and applies each initial property through the class's
// declared setter table. A setter error aborts construction: the
// half-built instance is released and the error is returned.
func (rt *Runtime) Construct(c *Class, props map[string]interface{}) (Instance, error) {
	inst := c.allocate()
	o := inst.Object()
	o.class = c
	o.self = inst
	o.rt = rt

	rt.nextID++
	o.handle = Handle{id: rt.nextID}
	rt.slots[o.handle.id] = &slot{inst: inst, refs: 1}

	for name, value := range props {
		if _, err := c.SetProperty(inst, name, value); err != nil {
			rt.Unref(o.handle)
			return nil, err
		}
	}
	return inst, nil
}

// Resolve returns the live instance for a handle. It reports false for
// the zero handle and for handles whose instance has been collected.
func (rt *Runtime) Resolve(h Handle) (Instance, bool) {
	s, ok := rt.slots[h.id]
	if !ok {
		return nil, false
	}
	return s.inst, true
}

// Ref takes an additional reference on the instance behind h.
func (rt *Runtime) Ref(h Handle) {
	s, ok := rt.slots[h.id]
	if !ok {
		panic(fmt.Sprintf("class: Ref on dead handle %d", h.id))
	}
	s.refs++
}

// Unref drops one reference. When the count reaches zero the instance
// is collected: the class finalizer runs first, then the slot is
// removed, invalidating the handle. Unref on an already collected
// handle is a host integration bug and panics.
func (rt *Runtime) Unref(h Handle) {
	s, ok := rt.slots[h.id]
	if !ok {
		panic(fmt.Sprintf("class: Unref on dead handle %d", h.id))
	}
	s.refs--
	if s.refs > 0 {
		return
	}
	o := s.inst.Object()
	logger.Printf("collecting %s object %d", o.class.Name(), h.id)
	if o.class.finalize != nil {
		o.class.finalize(s.inst)
	}
	delete(rt.slots, h.id)
}

// Live reports the number of live instances, for tests and diagnostics.
func (rt *Runtime) Live() int { return len(rt.slots) }
