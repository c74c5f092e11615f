// Lunekit is a demo host for the widget core. It builds a small widget
// tree, applies configured defaults, prints the tree, and saves the
// result as a named session.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"src.lunekit.org/pkg/class"
	"src.lunekit.org/pkg/config"
	"src.lunekit.org/pkg/logutil"
	"src.lunekit.org/pkg/session"
	"src.lunekit.org/pkg/toolkit"
	"src.lunekit.org/pkg/widget"
	"src.lunekit.org/pkg/widgets"
)

var (
	configPath  = flag.String("config", "", "path to a widget defaults file")
	dbPath      = flag.String("db", "", "path to the session database")
	logPath     = flag.String("log", "", "a file to write debug log to")
	sessionName = flag.String("session", "main", "name to save the session under")
)

func main() {
	flag.Parse()
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fatal(err)
		}
		defer f.Close()
		logutil.SetOutput(f)
	}

	h := widget.NewHost()

	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			fatal(err)
		}
		h.Class().Connect("init", func(inst class.Instance, args ...interface{}) {
			if err := cfg.Apply(inst.(*widget.Widget)); err != nil {
				fmt.Fprintln(os.Stderr, "apply defaults:", err)
			}
		})
	}

	ws, byNode, err := buildTree(h)
	if err != nil {
		fatal(err)
	}

	root, _ := widgets.Node(ws[0])
	printTree(h.Toolkit(), byNode, root, 0, isatty.IsTerminal(os.Stdout.Fd()))

	if *dbPath != "" {
		st, err := session.NewStore(*dbPath)
		if err != nil {
			fatal(err)
		}
		defer st.Close()
		if err := st.SaveSession(*sessionName, session.Capture(ws)); err != nil {
			fatal(err)
		}
		fmt.Printf("saved session %q to %s\n", *sessionName, *dbPath)
	}
}

// buildTree makes a vbox holding a webview and a textarea, and returns
// the widgets along with a node-to-widget index for printing.
func buildTree(h *widget.Host) ([]*widget.Widget, map[toolkit.Node]*widget.Widget, error) {
	byNode := make(map[toolkit.Node]*widget.Widget)
	var ws []*widget.Widget
	for _, typ := range []string{"vbox", "webview", "textarea"} {
		w, err := h.NewWidget(map[string]interface{}{"type": typ})
		if err != nil {
			return nil, nil, err
		}
		if n, ok := widgets.Node(w); ok {
			byNode[n] = w
		}
		ws = append(ws, w)
	}

	box := ws[0]
	vs := box.Get("pack")
	if len(vs) != 1 {
		return nil, nil, fmt.Errorf("box has no pack method")
	}
	vs[0].(class.Method)(box, ws[1], ws[2])
	return ws, byNode, nil
}

func printTree(tk *toolkit.Tree, byNode map[toolkit.Node]*widget.Widget, n toolkit.Node, depth int, fancy bool) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	marker := "- "
	if fancy {
		marker = "└─ "
	}
	if depth == 0 {
		marker = ""
	}

	label := tk.Kind(n).String()
	if w, ok := byNode[n]; ok {
		for _, prop := range []string{"uri", "text"} {
			if vs := w.Get(prop); len(vs) == 1 {
				if s, _ := vs[0].(string); s != "" {
					label += fmt.Sprintf(" (%s=%s)", prop, s)
				}
			}
		}
	}
	fmt.Println(indent + marker + label)

	for _, c := range tk.Children(n) {
		printTree(tk, byNode, c, depth+1, fancy)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "lunekit:", err)
	os.Exit(2)
}
