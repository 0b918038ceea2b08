package scanner

import (
	"fmt"
	"go/token"
)

// StrayDirectiveError reports a routegen directive that is not the doc
// comment of a package-level function, so no route could ever be registered
// from it.
type StrayDirectiveError struct {
	Pos    token.Position
	Raw    string
	Method string // set when the directive sits on a method declaration
}

func (e *StrayDirectiveError) Error() string {
	if e.Method != "" {
		return fmt.Sprintf("%s: method %s: %s: directives are only valid on package-level functions",
			e.Pos, e.Method, e.Raw)
	}
	return fmt.Sprintf("%s: %s: directive is not the doc comment of a package-level function (a blank line detaches directives from their declaration)",
		e.Pos, e.Raw)
}
