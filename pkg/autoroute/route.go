// Package autoroute is the small runtime imported by routegen-generated code.
// It carries the route row type and the diagnostic table renderer.
package autoroute

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Banner precedes every route table.
const Banner = "List of automatically generated routes"

// Route is one handler registration captured at generation time.
type Route struct {
	Scope   string
	Path    string
	Handler string
	Verb    string
}

// WriteTable renders the banner followed by one aligned row per route.
func WriteTable(w io.Writer, routes []Route) {
	fmt.Fprintln(w, Banner)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SCOPE\tPATH\tHANDLER\tVERB")
	for _, r := range routes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Scope, r.Path, r.Handler, r.Verb)
	}
	_ = tw.Flush()
}
