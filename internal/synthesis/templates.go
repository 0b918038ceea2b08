package synthesis

// fileTmpl renders one complete generated source file. The output is already
// gofmt-shaped; Render still runs it through format.Source as a guard.
const fileTmpl = `// Code generated by routegen. DO NOT EDIT.

package {{.PkgName}}
{{- if .ImportLines}}

import (
{{- range .ImportLines}}
{{if .}}	{{.}}{{end}}
{{- end}}
)
{{- end}}
{{- range .Registrations}}

// {{.FuncName}} registers every handler discovered for module key {{printf "%q" .ModuleKey}}.
func {{.FuncName}}(r gin.IRouter) {
{{- range .Groups}}
	{
		g := r.Group({{printf "%q" .Prefix}})
{{- range .Routes}}
		g.Handle({{method .Verb}}, {{printf "%q" .Path}}, {{.Handler}})
{{- end}}
	}
{{- end}}
}
{{- end}}
{{- if .Listing}}

// {{.Listing.FuncName}} writes every generated route to stdout as an aligned table.
func {{.Listing.FuncName}}() {
{{- if .Listing.Rows}}
	autoroute.WriteTable(os.Stdout, []autoroute.Route{
{{- range .Listing.Rows}}
		{Scope: {{printf "%q" .Scope}}, Path: {{printf "%q" .Path}}, Handler: {{printf "%q" .Handler}}, Verb: {{printf "%q" .Verb}}},
{{- end}}
	})
{{- else}}
	autoroute.WriteTable(os.Stdout, nil)
{{- end}}
}
{{- end}}
`
