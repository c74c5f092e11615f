package widgets

import (
	"src.lunekit.org/pkg/class"
	"src.lunekit.org/pkg/token"
	"src.lunekit.org/pkg/toolkit"
	"src.lunekit.org/pkg/widget"
)

func init() {
	widget.RegisterConstructor(token.Hbox, func(w *widget.Widget) {
		newBox(w, toolkit.KindHbox)
	})
	widget.RegisterConstructor(token.Vbox, func(w *widget.Widget) {
		newBox(w, toolkit.KindVbox)
	})
}

type boxData struct {
	n           toolkit.Node
	homogeneous bool
	spacing     int
}

func (d *boxData) node() toolkit.Node { return d.n }

// newBox is the shared constructor behind hbox and vbox; the two
// variants differ only in the node kind they allocate.
func newBox(w *widget.Widget, kind toolkit.Kind) {
	d := &boxData{n: w.Host().Toolkit().Alloc(kind)}
	w.Data = d

	pack := class.Method(func(inst class.Instance, args ...interface{}) []interface{} {
		box := inst.(*widget.Widget)
		for _, arg := range args {
			child, ok := arg.(*widget.Widget)
			if !ok {
				logger.Printf("box pack: not a widget: %T", arg)
				continue
			}
			appendChild(box, d.n, child)
		}
		return nil
	})

	w.SetBehavior(widget.Behavior{
		Index: func(w *widget.Widget, prop token.Token) []interface{} {
			switch prop {
			case token.Homogeneous:
				return []interface{}{d.homogeneous}
			case token.Spacing:
				return []interface{}{d.spacing}
			case token.Pack:
				return []interface{}{pack}
			}
			return nil
		},
		NewIndex: func(w *widget.Widget, prop token.Token, value interface{}) {
			switch prop {
			case token.Homogeneous:
				if b, ok := value.(bool); ok {
					d.homogeneous = b
				}
			case token.Spacing:
				if n, ok := value.(int); ok {
					d.spacing = n
				}
			}
		},
		Destructor: func(w *widget.Widget) {
			w.Host().Toolkit().Release(d.n)
		},
	})
}
