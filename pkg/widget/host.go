package widget

import (
	"fmt"

	"src.lunekit.org/pkg/class"
	"src.lunekit.org/pkg/token"
	"src.lunekit.org/pkg/toolkit"
)

// Host bundles the collaborators widgets run against: the class
// runtime that owns object lifecycles, the widget class itself, and
// the toolkit tree variants allocate their nodes in. It is
// single-threaded, like the scripting host it stands in for.
type Host struct {
	rt  *class.Runtime
	cls *class.Class
	tk  *toolkit.Tree
}

// NewHost sets up a fresh host with the widget class installed.
func NewHost() *Host {
	h := &Host{rt: class.NewRuntime(), tk: toolkit.NewTree()}
	h.cls = newWidgetClass(h)
	return h
}

// Runtime returns the host's class runtime.
func (h *Host) Runtime() *class.Runtime { return h.rt }

// Class returns the widget class, e.g. for connecting class-level
// signal handlers.
func (h *Host) Class() *class.Class { return h.cls }

// Toolkit returns the toolkit tree variants allocate into.
func (h *Host) Toolkit() *toolkit.Tree { return h.tk }

// NewWidget creates an untyped widget, registers it with the class
// runtime, and applies the initial properties in props through the
// property protocol. Assigning "type" in props types the widget during
// construction, as the host's constructible boundary allows.
func (h *Host) NewWidget(props map[string]interface{}) (*Widget, error) {
	inst, err := h.rt.Construct(h.cls, props)
	if err != nil {
		return nil, err
	}
	return inst.(*Widget), nil
}

// Release drops the host's reference to the widget. With no other
// references outstanding this collects the widget: its destructor hook
// runs, then its handle is invalidated.
func (h *Host) Release(w *Widget) {
	h.rt.Unref(w.Handle())
}

// newWidgetClass builds the widget class: allocator, declared
// properties and the collection finalizer.
func newWidgetClass(h *Host) *class.Class {
	c := class.NewClass("widget", func() class.Instance {
		return &Widget{host: h}
	})

	c.AddProperty(token.Type, class.Property{
		Get: func(inst class.Instance) []interface{} {
			if typ, ok := inst.(*Widget).Type(); ok {
				return []interface{}{typ}
			}
			return nil
		},
		Set: func(inst class.Instance, value interface{}) error {
			name, ok := value.(string)
			if !ok {
				return UnknownType{Name: fmt.Sprint(value)}
			}
			return inst.(*Widget).SetType(name)
		},
	})

	// parent is derived and read-only: no setter.
	c.AddProperty(token.Parent, class.Property{
		Get: func(inst class.Instance) []interface{} {
			if owner, ok := inst.(*Widget).Parent(); ok {
				return []interface{}{owner}
			}
			return nil
		},
	})

	c.AddMethod("connect_signal", func(inst class.Instance, args ...interface{}) []interface{} {
		if len(args) != 2 {
			return nil
		}
		name, ok := args[0].(string)
		handler, ok2 := args[1].(class.SignalHandler)
		if ok && ok2 {
			inst.Object().Connect(name, handler)
		}
		return nil
	})
	c.AddMethod("emit_signal", func(inst class.Instance, args ...interface{}) []interface{} {
		if len(args) == 0 {
			return nil
		}
		if name, ok := args[0].(string); ok {
			inst.Object().Emit(name, args[1:]...)
		}
		return nil
	})

	c.SetFinalizer(func(inst class.Instance) {
		inst.(*Widget).reclaim()
	})
	return c
}
