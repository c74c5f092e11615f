package widgets

import (
	"src.lunekit.org/pkg/token"
	"src.lunekit.org/pkg/toolkit"
	"src.lunekit.org/pkg/widget"
)

func init() {
	widget.RegisterConstructor(token.Webview, newWebview)
}

type webviewData struct {
	n     toolkit.Node
	uri   string
	title string
}

func (d *webviewData) node() toolkit.Node { return d.n }

func newWebview(w *widget.Widget) {
	d := &webviewData{
		n:   w.Host().Toolkit().Alloc(toolkit.KindWebview),
		uri: "about:blank",
	}
	w.Data = d
	w.SetBehavior(widget.Behavior{
		Index: func(w *widget.Widget, prop token.Token) []interface{} {
			switch prop {
			case token.Uri:
				return []interface{}{d.uri}
			case token.Title:
				return []interface{}{d.title}
			}
			return nil
		},
		NewIndex: func(w *widget.Widget, prop token.Token, value interface{}) {
			if prop != token.Uri {
				return
			}
			if uri, ok := value.(string); ok && uri != d.uri {
				d.uri = uri
				w.Emit("property::uri")
			}
		},
		Destructor: func(w *widget.Widget) {
			w.Host().Toolkit().Release(d.n)
		},
	})
}

// SetTitle updates the page title as the embedding toolkit reports it,
// emitting property::title for listeners. The title property itself is
// read-only from the host side.
func SetTitle(w *widget.Widget, title string) {
	d, ok := w.Data.(*webviewData)
	if !ok || d.title == title {
		return
	}
	d.title = title
	w.Emit("property::title")
}
