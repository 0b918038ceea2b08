package processor

import (
	"fmt"
	"go/token"
)

// MissingScopeError reports a handler declaration whose register directive
// is absent or does not carry a usable scope string.
type MissingScopeError struct {
	Handler string
	Pos     token.Position
	Reason  string
}

func (e *MissingScopeError) Error() string {
	return fmt.Sprintf("%s: handler %s: %s: expected a prefix (e.g. %q) as the argument to %s",
		e.Pos, e.Handler, e.Reason, "/events", "//routegen:register")
}

// RouteMetadataError reports a handler declaration without exactly one
// recognized verb directive carrying a parsable path string.
type RouteMetadataError struct {
	Handler string
	Pos     token.Position
	Reason  string
}

func (e *RouteMetadataError) Error() string {
	return fmt.Sprintf("%s: handler %s: %s: a single verb directive with a path string is required (e.g. %s)",
		e.Pos, e.Handler, e.Reason, `//routegen:get "/search"`)
}
