package class_test

import (
	"errors"
	"testing"

	"src.lunekit.org/pkg/class"
	"src.lunekit.org/pkg/token"
)

// thing is a minimal instance type for exercising the runtime.
type thing struct {
	class.Base
	title  string
	closed int
}

var errBadTitle = errors.New("bad title")

func newThingClass() *class.Class {
	c := class.NewClass("thing", func() class.Instance { return &thing{} })
	c.AddProperty(token.Title, class.Property{
		Get: func(inst class.Instance) []interface{} {
			return []interface{}{inst.(*thing).title}
		},
		Set: func(inst class.Instance, value interface{}) error {
			s, ok := value.(string)
			if !ok {
				return errBadTitle
			}
			inst.(*thing).title = s
			return nil
		},
	})
	// Read-only property: no setter.
	c.AddProperty(token.Parent, class.Property{
		Get: func(inst class.Instance) []interface{} { return nil },
	})
	c.AddMethod("poke", func(inst class.Instance, args ...interface{}) []interface{} {
		return []interface{}{"poked"}
	})
	c.SetFinalizer(func(inst class.Instance) { inst.(*thing).closed++ })
	return c
}

func TestConstructAppliesInitialProperties(t *testing.T) {
	rt := class.NewRuntime()
	inst, err := rt.Construct(newThingClass(), map[string]interface{}{"title": "hi"})
	if err != nil {
		t.Fatalf("Construct -> error %v", err)
	}
	if got := inst.(*thing).title; got != "hi" {
		t.Errorf("title = %q, want %q", got, "hi")
	}
}

func TestConstructAbortsOnSetterError(t *testing.T) {
	rt := class.NewRuntime()
	_, err := rt.Construct(newThingClass(), map[string]interface{}{"title": 7})
	if err != errBadTitle {
		t.Errorf("Construct -> error %v, want %v", err, errBadTitle)
	}
	if rt.Live() != 0 {
		t.Errorf("Live() = %d after aborted construction, want 0", rt.Live())
	}
}

func TestGetProperty(t *testing.T) {
	rt := class.NewRuntime()
	c := newThingClass()
	inst, _ := rt.Construct(c, map[string]interface{}{"title": "hi"})

	vs, ok := c.GetProperty(inst, "title")
	if !ok || len(vs) != 1 || vs[0] != "hi" {
		t.Errorf(`GetProperty("title") = %v, %v, want ["hi"], true`, vs, ok)
	}
	// Methods resolve through the same path.
	vs, ok = c.GetProperty(inst, "poke")
	if !ok || len(vs) != 1 {
		t.Fatalf(`GetProperty("poke") = %v, %v, want one value, true`, vs, ok)
	}
	m, ok := vs[0].(class.Method)
	if !ok {
		t.Fatalf(`GetProperty("poke") did not return a Method: %T`, vs[0])
	}
	if rets := m(inst); len(rets) != 1 || rets[0] != "poked" {
		t.Errorf("method call = %v, want [poked]", rets)
	}
	// Unknown names do not match.
	if _, ok := c.GetProperty(inst, "bogus"); ok {
		t.Errorf(`GetProperty("bogus") matched, want miss`)
	}
}

func TestSetPropertyIgnoresReadOnlyAndUnknown(t *testing.T) {
	rt := class.NewRuntime()
	c := newThingClass()
	inst, _ := rt.Construct(c, nil)

	consumed, err := c.SetProperty(inst, "parent", "x")
	if consumed || err != nil {
		t.Errorf(`SetProperty("parent") = %v, %v, want false, nil`, consumed, err)
	}
	consumed, err = c.SetProperty(inst, "bogus", "x")
	if consumed || err != nil {
		t.Errorf(`SetProperty("bogus") = %v, %v, want false, nil`, consumed, err)
	}
}

func TestSignalOrder(t *testing.T) {
	rt := class.NewRuntime()
	c := newThingClass()
	inst, _ := rt.Construct(c, nil)

	var order []string
	c.Connect("ping", func(class.Instance, ...interface{}) {
		order = append(order, "class")
	})
	inst.Object().Connect("ping", func(class.Instance, ...interface{}) {
		order = append(order, "object")
	})
	inst.Object().Emit("ping")

	if len(order) != 2 || order[0] != "object" || order[1] != "class" {
		t.Errorf("emission order = %v, want [object class]", order)
	}
}

func TestEmitPassesArgs(t *testing.T) {
	rt := class.NewRuntime()
	inst, _ := rt.Construct(newThingClass(), nil)

	var got []interface{}
	inst.Object().Connect("ping", func(_ class.Instance, args ...interface{}) {
		got = args
	})
	inst.Object().Emit("ping", 1, "two")
	if len(got) != 2 || got[0] != 1 || got[1] != "two" {
		t.Errorf("handler args = %v, want [1 two]", got)
	}
}

func TestUnrefCollectsAtZero(t *testing.T) {
	rt := class.NewRuntime()
	inst, _ := rt.Construct(newThingClass(), nil)
	th := inst.(*thing)
	h := th.Handle()

	rt.Ref(h)
	rt.Unref(h)
	if th.closed != 0 {
		t.Fatalf("finalizer ran with references outstanding")
	}
	if _, ok := rt.Resolve(h); !ok {
		t.Fatalf("Resolve failed on a live handle")
	}

	rt.Unref(h)
	if th.closed != 1 {
		t.Errorf("finalizer ran %d times, want 1", th.closed)
	}
	if _, ok := rt.Resolve(h); ok {
		t.Errorf("Resolve succeeded on a collected handle")
	}
	if rt.Live() != 0 {
		t.Errorf("Live() = %d, want 0", rt.Live())
	}
}

func TestZeroHandleNeverResolves(t *testing.T) {
	rt := class.NewRuntime()
	if _, ok := rt.Resolve(class.Handle{}); ok {
		t.Errorf("zero handle resolved")
	}
	if (class.Handle{}).Valid() {
		t.Errorf("zero handle reports Valid")
	}
}
