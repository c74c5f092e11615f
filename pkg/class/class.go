// Package class implements the host-side class runtime consumed by the
// widget core: reference-counted object handles, declared property
// tables, method tables and signal emission.
//
// The runtime is single-threaded by design. All calls happen on the
// host's one logical thread of control; emission and property dispatch
// may re-enter the runtime synchronously, but never in parallel.
package class

import (
	"src.lunekit.org/pkg/token"
)

// Instance is satisfied by any type that embeds Object.
type Instance interface {
	Object() *Object
}

// Getter reads a declared property, returning zero or more values.
type Getter func(inst Instance) []interface{}

// Setter writes a declared property. A nil error means the write was
// accepted; an error unwinds to the host.
type Setter func(inst Instance, value interface{}) error

// Property is one entry in a class's declared-property table. Either
// slot may be nil: a nil Get makes the property unreadable, a nil Set
// makes writes to it a silent no-op.
type Property struct {
	Get Getter
	Set Setter
}

// Method is a host-callable method on a class.
type Method func(inst Instance, args ...interface{}) []interface{}

// Finalizer runs when the runtime collects an instance, before its
// handle is invalidated.
type Finalizer func(inst Instance)

// Class describes one host-visible object class.
type Class struct {
	name       string
	allocate   func() Instance
	properties map[token.Token]Property
	methods    map[string]Method
	signals    map[string][]SignalHandler
	finalize   Finalizer
}

// NewClass creates a class with the given name and allocator. The
// allocator returns a fresh, unregistered instance.
func NewClass(name string, allocate func() Instance) *Class {
	return &Class{
		name:       name,
		allocate:   allocate,
		properties: make(map[token.Token]Property),
		methods:    make(map[string]Method),
		signals:    make(map[string][]SignalHandler),
	}
}

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// AddProperty declares a property on the class.
func (c *Class) AddProperty(t token.Token, p Property) {
	c.properties[t] = p
}

// AddMethod declares a method on the class.
func (c *Class) AddMethod(name string, m Method) {
	c.methods[name] = m
}

// SetFinalizer installs the hook run when an instance is collected.
func (c *Class) SetFinalizer(f Finalizer) {
	c.finalize = f
}

// Connect registers a class-level signal handler, observed by every
// instance of the class.
func (c *Class) Connect(signal string, h SignalHandler) {
	c.signals[signal] = append(c.signals[signal], h)
}

// GetProperty resolves a name against the class: first the declared
// property table, then the method table. The second return value
// reports whether anything matched; a declared property with no getter
// matches and yields no values.
func (c *Class) GetProperty(inst Instance, name string) ([]interface{}, bool) {
	if p, ok := c.properties[token.Tokenize(name)]; ok {
		if p.Get == nil {
			return nil, true
		}
		return p.Get(inst), true
	}
	if m, ok := c.methods[name]; ok {
		return []interface{}{m}, true
	}
	return nil, false
}

// SetProperty routes a write to the declared setter for name, if any.
// It reports whether a setter consumed the write. Writes to undeclared
// names, or to declared properties with no setter, are ignored and
// report false.
func (c *Class) SetProperty(inst Instance, name string, value interface{}) (bool, error) {
	p, ok := c.properties[token.Tokenize(name)]
	if !ok || p.Set == nil {
		return false, nil
	}
	return true, p.Set(inst, value)
}
