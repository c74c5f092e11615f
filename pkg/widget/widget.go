// Package widget implements the host-facing widget object: an opaque
// handle whose concrete behavior is chosen at runtime by assigning a
// type name. Generic properties (type, parent) live on the widget
// class; everything else is deferred to the behavior slots installed by
// the variant constructor registered for the chosen type.
package widget

import (
	"src.lunekit.org/pkg/class"
	"src.lunekit.org/pkg/logutil"
	"src.lunekit.org/pkg/token"
)

var logger = logutil.GetLogger("[widget] ")

// Behavior is the set of polymorphic slots a variant constructor may
// install. All slots are optional; an absent slot means no custom
// behavior.
type Behavior struct {
	// Index resolves property reads the class does not handle. It
	// returns zero or more values.
	Index func(w *Widget, prop token.Token) []interface{}
	// NewIndex observes property writes. It runs after the class-level
	// setter, for declared and undeclared names alike.
	NewIndex func(w *Widget, prop token.Token, value interface{})
	// Destructor runs when the widget is collected, before generic
	// teardown.
	Destructor func(w *Widget)
}

// Widget is one widget instance. It starts untyped; assigning the type
// property installs a variant's behavior exactly once.
type Widget struct {
	class.Base
	host     *Host
	typ      string
	parent   class.Handle
	window   class.Handle
	behavior Behavior

	// Data is the variant's private payload, owned by whichever
	// constructor typed the widget.
	Data interface{}
}

// Host returns the host environment the widget was created in.
func (w *Widget) Host() *Host { return w.host }

// Type returns the widget's type name. It reports false while the
// widget is untyped.
func (w *Widget) Type() (string, bool) {
	if w.typ == "" {
		return "", false
	}
	return w.typ, true
}

// SetType assigns the widget's type, exactly once. The registered
// constructor for the resolved name runs first and installs the
// variant's behavior; the name is then stored, and a single "init"
// signal is emitted with no arguments, so that listeners observe a
// fully typed widget.
func (w *Widget) SetType(name string) error {
	if w.typ != "" {
		return AlreadyTyped{Type: w.typ}
	}
	ctor := constructor(token.Tokenize(name))
	if ctor == nil {
		return UnknownType{Name: name}
	}
	ctor(w)
	w.typ = name
	logger.Printf("typed widget %v as %s", w.Handle(), name)
	w.Emit("init")
	return nil
}

// SetBehavior replaces the widget's behavior slots. It is meant to be
// called from variant constructors.
func (w *Widget) SetBehavior(b Behavior) { w.behavior = b }

// Parent returns the widget's logical owner: its parent if that is
// still alive, else its window, else nothing. Both links are weak, so
// liveness is checked through the runtime on every call.
func (w *Widget) Parent() (class.Instance, bool) {
	if inst, ok := w.Runtime().Resolve(w.parent); ok {
		return inst, true
	}
	if inst, ok := w.Runtime().Resolve(w.window); ok {
		return inst, true
	}
	return nil, false
}

// SetParent records the widget's enclosing container. The handle is
// stored as-is and does not keep the container alive; topology
// ownership stays with the caller.
func (w *Widget) SetParent(h class.Handle) { w.parent = h }

// SetWindow records the widget's enclosing top-level window, used as a
// fallback owner when no parent container is set.
func (w *Widget) SetWindow(h class.Handle) { w.window = h }

// Get reads a property. Class-level resolution (declared properties
// and methods) wins; otherwise the variant's Index slot is consulted.
// An unresolved name yields zero values, not an error.
func (w *Widget) Get(name string) []interface{} {
	if vs, ok := w.Class().GetProperty(w, name); ok {
		return vs
	}
	if w.behavior.Index != nil {
		return w.behavior.Index(w, token.Tokenize(name))
	}
	return nil
}

// Set writes a property. The class-level setter runs first; an error
// from it unwinds without reaching the variant. Otherwise the variant's
// NewIndex slot runs as well, whether or not a class setter consumed
// the write: generic properties and variant side effects are layered,
// not exclusive.
func (w *Widget) Set(name string, value interface{}) error {
	if _, err := w.Class().SetProperty(w, name, value); err != nil {
		return err
	}
	if w.behavior.NewIndex != nil {
		w.behavior.NewIndex(w, token.Tokenize(name), value)
	}
	return nil
}

// reclaim runs at collection: the variant's destructor first, then
// generic teardown. The runtime guarantees it runs exactly once.
func (w *Widget) reclaim() {
	if w.behavior.Destructor != nil {
		w.behavior.Destructor(w)
	}
	w.behavior = Behavior{}
	w.Data = nil
}
