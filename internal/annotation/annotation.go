// Package annotation defines the routegen comment-directive vocabulary and
// extracts directives from declaration doc comments. It does no validation
// beyond syntax; policy lives with the caller.
package annotation

import (
	"go/ast"
	"go/token"
	"strconv"
	"strings"
	"unicode"
)

// Prefix marks a comment line as a routegen directive. Following the Go
// directive convention there is no space after the slashes, so ordinary
// prose mentioning routegen is never picked up.
const Prefix = "//routegen:"

// Register is the directive carrying the scope argument, e.g.
//
//	//routegen:register "/events"
const Register = "register"

// verb directive names and their canonical HTTP methods
var verbs = map[string]string{
	"get":    "GET",
	"post":   "POST",
	"put":    "PUT",
	"delete": "DELETE",
	"patch":  "PATCH",
}

// Verb reports the canonical uppercase HTTP verb for a directive name.
func Verb(name string) (string, bool) {
	v, ok := verbs[name]
	return v, ok
}

// Directive is one parsed routegen comment line.
type Directive struct {
	Name  string // text between the prefix and the first space
	Arg   string // decoded argument, valid only when ArgOK
	ArgOK bool   // an argument was present and was a Go string literal
	Raw   string // the full comment line, for error reporting
	Pos   token.Position
}

// FromDoc extracts the routegen directives from a declaration's doc comment
// group, in source order. A nil group yields nil.
func FromDoc(fset *token.FileSet, doc *ast.CommentGroup) []Directive {
	if doc == nil {
		return nil
	}
	var out []Directive
	for _, c := range doc.List {
		rest, ok := strings.CutPrefix(c.Text, Prefix)
		if !ok {
			continue
		}
		d := Directive{Raw: c.Text, Pos: fset.Position(c.Slash)}
		name, arg := rest, ""
		if i := strings.IndexFunc(rest, unicode.IsSpace); i >= 0 {
			name, arg = rest[:i], rest[i+1:]
		}
		d.Name = name
		if arg = strings.TrimSpace(arg); arg != "" {
			if v, err := strconv.Unquote(arg); err == nil {
				d.Arg = v
				d.ArgOK = true
			}
		}
		out = append(out, d)
	}
	return out
}
