package widget

import "fmt"

// AlreadyTyped is returned when a widget's type is assigned a second
// time. It carries the type the widget already has.
type AlreadyTyped struct {
	Type string
}

func (e AlreadyTyped) Error() string {
	return fmt.Sprintf("widget is already of type %q", e.Type)
}

// UnknownType is returned when a type name matches no registered
// constructor. It carries the offending name.
type UnknownType struct {
	Name string
}

func (e UnknownType) Error() string {
	return "unknown widget type: " + e.Name
}
