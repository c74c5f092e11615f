package widgets

import (
	"src.lunekit.org/pkg/class"
	"src.lunekit.org/pkg/token"
	"src.lunekit.org/pkg/toolkit"
	"src.lunekit.org/pkg/widget"
)

func init() {
	widget.RegisterConstructor(token.Notebook, newNotebook)
}

type notebookData struct {
	n toolkit.Node
}

func (d *notebookData) node() toolkit.Node { return d.n }

func newNotebook(w *widget.Widget) {
	d := &notebookData{n: w.Host().Toolkit().Alloc(toolkit.KindNotebook)}
	w.Data = d

	appendPage := class.Method(func(inst class.Instance, args ...interface{}) []interface{} {
		nb := inst.(*widget.Widget)
		for _, arg := range args {
			page, ok := arg.(*widget.Widget)
			if !ok {
				logger.Printf("notebook append: not a widget: %T", arg)
				continue
			}
			appendChild(nb, d.n, page)
		}
		return nil
	})

	w.SetBehavior(widget.Behavior{
		Index: func(w *widget.Widget, prop token.Token) []interface{} {
			switch prop {
			case token.Count:
				return []interface{}{len(w.Host().Toolkit().Children(d.n))}
			case token.Append:
				return []interface{}{appendPage}
			}
			return nil
		},
		Destructor: func(w *widget.Widget) {
			w.Host().Toolkit().Release(d.n)
		},
	})
}
