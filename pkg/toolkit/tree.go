// Package toolkit provides the node arena backing concrete widgets.
// The arena owns every node; the rest of the system refers to nodes
// through generation-checked handles that may dangle but can always be
// validated.
package toolkit

// Kind identifies what a node renders as.
type Kind int

// Node kinds, one per widget variant.
const (
	KindNone Kind = iota
	KindWebview
	KindNotebook
	KindTextarea
	KindHbox
	KindVbox
)

var kindNames = [...]string{
	KindNone:     "none",
	KindWebview:  "webview",
	KindNotebook: "notebook",
	KindTextarea: "textarea",
	KindHbox:     "hbox",
	KindVbox:     "vbox",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// Node is a handle into a Tree. The zero Node is never valid. A Node
// whose slot has been released and reused fails validation via its
// generation counter.
type Node struct {
	index uint32
	gen   uint32
}

type nodeSlot struct {
	gen      uint32
	live     bool
	kind     Kind
	parent   Node
	children []Node
}

// Tree is an arena of UI nodes. It owns all node storage and the
// parent/child topology; everything else holds Node handles only.
type Tree struct {
	slots []nodeSlot
	free  []uint32
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	// Slot 0 is reserved so that the zero Node is always invalid.
	return &Tree{slots: make([]nodeSlot, 1)}
}

// Alloc creates a new detached node of the given kind.
func (t *Tree) Alloc(kind Kind) Node {
	if n := len(t.free); n > 0 {
		index := t.free[n-1]
		t.free = t.free[:n-1]
		s := &t.slots[index]
		s.live = true
		s.kind = kind
		s.parent = Node{}
		s.children = nil
		return Node{index: index, gen: s.gen}
	}
	t.slots = append(t.slots, nodeSlot{gen: 1, live: true, kind: kind})
	return Node{index: uint32(len(t.slots) - 1), gen: 1}
}

func (t *Tree) slot(n Node) *nodeSlot {
	if n.index == 0 || int(n.index) >= len(t.slots) {
		return nil
	}
	s := &t.slots[n.index]
	if !s.live || s.gen != n.gen {
		return nil
	}
	return s
}

// Valid reports whether n refers to a live node of this tree.
func (t *Tree) Valid(n Node) bool { return t.slot(n) != nil }

// Kind returns the kind of a node, or KindNone if the handle dangles.
func (t *Tree) Kind(n Node) Kind {
	if s := t.slot(n); s != nil {
		return s.kind
	}
	return KindNone
}

// Append makes child the last child of parent. It reports false if
// either handle dangles. A child already attached elsewhere is detached
// first.
func (t *Tree) Append(parent, child Node) bool {
	ps, cs := t.slot(parent), t.slot(child)
	if ps == nil || cs == nil {
		return false
	}
	if cs.parent != (Node{}) {
		t.Detach(child)
	}
	ps.children = append(ps.children, child)
	cs.parent = parent
	return true
}

// Detach removes child from its parent, if it has one.
func (t *Tree) Detach(child Node) {
	cs := t.slot(child)
	if cs == nil || cs.parent == (Node{}) {
		return
	}
	if ps := t.slot(cs.parent); ps != nil {
		for i, c := range ps.children {
			if c == child {
				ps.children = append(ps.children[:i], ps.children[i+1:]...)
				break
			}
		}
	}
	cs.parent = Node{}
}

// Parent returns the parent of n, or an invalid Node if detached or
// dangling.
func (t *Tree) Parent(n Node) Node {
	if s := t.slot(n); s != nil {
		return s.parent
	}
	return Node{}
}

// Children returns a copy of n's child list.
func (t *Tree) Children(n Node) []Node {
	s := t.slot(n)
	if s == nil || len(s.children) == 0 {
		return nil
	}
	children := make([]Node, len(s.children))
	copy(children, s.children)
	return children
}

// Release frees a node: it is detached from its parent, its children
// are detached from it, and its slot becomes reusable. Handles to the
// node dangle from this point on. Releasing an already dead handle is a
// no-op.
func (t *Tree) Release(n Node) {
	s := t.slot(n)
	if s == nil {
		return
	}
	t.Detach(n)
	for _, c := range s.children {
		if cs := t.slot(c); cs != nil {
			cs.parent = Node{}
		}
	}
	s.live = false
	s.gen++
	s.children = nil
	t.free = append(t.free, n.index)
}

// Len reports the number of live nodes.
func (t *Tree) Len() int {
	n := 0
	for i := range t.slots {
		if t.slots[i].live {
			n++
		}
	}
	return n
}
