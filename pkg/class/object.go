package class

// SignalHandler reacts to a signal emitted on an object. It receives
// the emitting instance and the emission's positional arguments.
type SignalHandler func(inst Instance, args ...interface{})

// Object is the embeddable base of all class instances. It is wired up
// by Runtime.Construct; a zero Object belongs to no class and has no
// handle.
type Object struct {
	class   *Class
	self    Instance
	rt      *Runtime
	handle  Handle
	signals map[string][]SignalHandler
}

// Base is the name under which Object is embedded. Embedding
// class.Base instead of class.Object keeps the embedded field from
// shadowing the promoted Object method, so the embedding type
// satisfies Instance.
type Base = Object

// Object returns the receiver, making any embedding type satisfy
// Instance.
func (o *Object) Object() *Object { return o }

// Class returns the object's class, or nil before construction.
func (o *Object) Class() *Class { return o.class }

// Runtime returns the runtime the object is registered with.
func (o *Object) Runtime() *Runtime { return o.rt }

// Handle returns the host handle keeping the object reachable. It
// stays valid for the object's whole lifetime and is invalidated
// exactly once, at collection.
func (o *Object) Handle() Handle { return o.handle }

// Connect registers an object-level signal handler.
func (o *Object) Connect(signal string, h SignalHandler) {
	if o.signals == nil {
		o.signals = make(map[string][]SignalHandler)
	}
	o.signals[signal] = append(o.signals[signal], h)
}

// Emit runs the handlers for a signal: object-level handlers first,
// then class-level ones, in registration order. Handlers run
// synchronously and may re-enter the runtime.
func (o *Object) Emit(signal string, args ...interface{}) {
	for _, h := range o.signals[signal] {
		h(o.self, args...)
	}
	if o.class != nil {
		for _, h := range o.class.signals[signal] {
			h(o.self, args...)
		}
	}
}
