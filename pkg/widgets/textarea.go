package widgets

import (
	"src.lunekit.org/pkg/token"
	"src.lunekit.org/pkg/toolkit"
	"src.lunekit.org/pkg/widget"
)

func init() {
	widget.RegisterConstructor(token.Textarea, newTextarea)
}

type textareaData struct {
	n    toolkit.Node
	text string
}

func (d *textareaData) node() toolkit.Node { return d.n }

func newTextarea(w *widget.Widget) {
	d := &textareaData{n: w.Host().Toolkit().Alloc(toolkit.KindTextarea)}
	w.Data = d
	w.SetBehavior(widget.Behavior{
		Index: func(w *widget.Widget, prop token.Token) []interface{} {
			if prop == token.Text {
				return []interface{}{d.text}
			}
			return nil
		},
		NewIndex: func(w *widget.Widget, prop token.Token, value interface{}) {
			if prop != token.Text {
				return
			}
			if text, ok := value.(string); ok {
				d.text = text
			}
		},
		Destructor: func(w *widget.Widget) {
			w.Host().Toolkit().Release(d.n)
		},
	})
}
