package session

import (
	"src.lunekit.org/pkg/widget"
)

// Entry records one widget: its type name and the single piece of
// host-visible state worth restoring for that type.
type Entry struct {
	Type  string `json:"type"`
	State string `json:"state,omitempty"`
}

// Session is an ordered list of widget entries.
type Session struct {
	Entries []Entry
}

// stateProps names the property captured and restored per widget type.
// Types not listed round-trip with empty state.
var stateProps = map[string]string{
	"webview":  "uri",
	"textarea": "text",
}

// Capture snapshots the given widgets into a session. Untyped widgets
// are skipped; state is read through the property protocol, so variant
// index hooks supply it.
func Capture(ws []*widget.Widget) Session {
	var s Session
	for _, w := range ws {
		typ, ok := w.Type()
		if !ok {
			continue
		}
		e := Entry{Type: typ}
		if prop, ok := stateProps[typ]; ok {
			if vs := w.Get(prop); len(vs) == 1 {
				e.State, _ = vs[0].(string)
			}
		}
		s.Entries = append(s.Entries, e)
	}
	return s
}

// Restore recreates the session's widgets in the given host, in entry
// order, writing each entry's state back through the property protocol.
// A failing entry aborts the restore and returns the error.
func Restore(h *widget.Host, s Session) ([]*widget.Widget, error) {
	ws := make([]*widget.Widget, 0, len(s.Entries))
	for _, e := range s.Entries {
		w, err := h.NewWidget(map[string]interface{}{"type": e.Type})
		if err != nil {
			return nil, err
		}
		if prop, ok := stateProps[e.Type]; ok && e.State != "" {
			if err := w.Set(prop, e.State); err != nil {
				return nil, err
			}
		}
		ws = append(ws, w)
	}
	return ws, nil
}
