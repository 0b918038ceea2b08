package synthesis

import "fmt"

// ArgumentError reports an invalid synthesizer invocation, such as a missing
// module key or a function name that is not a Go identifier.
type ArgumentError struct {
	Field  string
	Detail string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid synthesizer arguments: %s: %s", e.Field, e.Detail)
}
