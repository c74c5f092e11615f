// Package token maps property and type name strings to small comparable
// tokens, so that dispatch code can branch on an integer instead of
// comparing strings.
package token

// Token identifies a known property or type name. The zero value is
// Unknown.
type Token int

// Known tokens. Unknown is returned for any name not in the table.
const (
	Unknown Token = iota

	// Declared widget properties.
	Type
	Parent

	// Widget type names.
	Webview
	Notebook
	Textarea
	Hbox
	Vbox

	// Variant properties and methods.
	Uri
	Title
	Text
	Homogeneous
	Spacing
	Count
	Append
	Pack
	Visible
)

var tokens = map[string]Token{
	"type":        Type,
	"parent":      Parent,
	"webview":     Webview,
	"notebook":    Notebook,
	"textarea":    Textarea,
	"hbox":        Hbox,
	"vbox":        Vbox,
	"uri":         Uri,
	"title":       Title,
	"text":        Text,
	"homogeneous": Homogeneous,
	"spacing":     Spacing,
	"count":       Count,
	"append":      Append,
	"pack":        Pack,
	"visible":     Visible,
}

var names = make(map[Token]string, len(tokens))

func init() {
	for name, t := range tokens {
		names[t] = name
	}
}

// Tokenize returns the token for a name, or Unknown if the name is not
// in the table. It is a pure function: equal inputs always produce
// equal tokens.
func Tokenize(name string) Token {
	return tokens[name]
}

func (t Token) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return "unknown"
}
