package widget

import (
	"fmt"

	"src.lunekit.org/pkg/token"
)

// Constructor turns an untyped widget into a concrete variant. It must
// install behavior slots and perform any toolkit-level allocation, but
// must not set the widget's type or emit "init"; the dispatcher does
// both after it returns.
type Constructor func(w *Widget)

var constructors = make(map[token.Token]Constructor)

// RegisterConstructor registers the constructor for a widget type
// token. New variants can be added without touching the dispatcher, as
// long as each maps a distinct token. Registering the same token twice,
// or the Unknown token, panics.
func RegisterConstructor(t token.Token, ctor Constructor) {
	if t == token.Unknown {
		panic("widget: RegisterConstructor with unknown token")
	}
	if _, dup := constructors[t]; dup {
		panic(fmt.Sprintf("widget: RegisterConstructor called twice for %v", t))
	}
	constructors[t] = ctor
}

func constructor(t token.Token) Constructor {
	return constructors[t]
}

// Registered reports whether a constructor is registered for a type
// token.
func Registered(t token.Token) bool {
	_, ok := constructors[t]
	return ok
}
