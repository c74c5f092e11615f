// Package widgets provides the concrete widget variants: webview,
// notebook, textarea, hbox and vbox. Importing the package registers
// all of them with the widget dispatcher.
//
// Each constructor allocates a node in the host's toolkit tree and
// installs behavior slots; none of them touches the widget's type field
// or emits "init", which the dispatcher owns.
package widgets

import (
	"src.lunekit.org/pkg/logutil"
	"src.lunekit.org/pkg/toolkit"
	"src.lunekit.org/pkg/widget"
)

var logger = logutil.GetLogger("[widgets] ")

// noder is implemented by every variant payload in this package.
type noder interface {
	node() toolkit.Node
}

// Node returns the toolkit node backing a widget typed by this
// package. It reports false for untyped widgets and foreign variants.
func Node(w *widget.Widget) (toolkit.Node, bool) {
	if d, ok := w.Data.(noder); ok {
		return d.node(), true
	}
	return toolkit.Node{}, false
}

// appendChild attaches child's node under the parent node and records
// the structural back-link on the child. The back-link is weak; the
// toolkit tree stays the owner of the topology.
func appendChild(parent *widget.Widget, parentNode toolkit.Node, child *widget.Widget) bool {
	childNode, ok := Node(child)
	if !ok {
		logger.Printf("cannot attach untyped widget %v", child.Handle())
		return false
	}
	if !parent.Host().Toolkit().Append(parentNode, childNode) {
		logger.Printf("cannot attach widget %v: dangling node", child.Handle())
		return false
	}
	child.SetParent(parent.Handle())
	return true
}
