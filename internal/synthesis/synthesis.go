// Package synthesis emits the generated registration and listing routines
// from registry snapshots. All route data is captured at synthesis time as
// literals, so the emitted code never touches the registry when it runs.
package synthesis

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"sort"
	"strconv"
	"text/template"
	"unicode"

	"go.uber.org/zap"

	"github.com/nulzo/routegen/internal/registry"
	"github.com/nulzo/routegen/pkg/autoroute"
)

// autoroutePkg is the import path generated listings depend on.
const autoroutePkg = "github.com/nulzo/routegen/pkg/autoroute"

// Params configures one registration-routine synthesis.
type Params struct {
	ModuleKey string // which scope's registrations to aggregate, mandatory
	UseScope  bool   // true registers each group under its own scope prefix
	FuncName  string // derived from ModuleKey when empty
}

// Group is one scope block inside a registration routine. Routes keep the
// registry's insertion order.
type Group struct {
	Prefix string
	Routes []registry.Entry
}

// Registration is one synthesized registration routine.
type Registration struct {
	FuncName  string
	ModuleKey string
	Groups    []Group
}

// Listing is the synthesized diagnostic routine.
type Listing struct {
	FuncName string
	Rows     []autoroute.Route
}

// File models one generated source file.
type File struct {
	PkgName       string
	Registrations []Registration
	Listing       *Listing
}

// ImportLines returns the rendered import block lines, stdlib first, with a
// blank separator line between groups. Pre-quoted so the template can emit
// them verbatim.
func (f File) ImportLines() []string {
	var std, third []string
	if len(f.Registrations) > 0 {
		third = append(third, "github.com/gin-gonic/gin")
		if f.needsNetHTTP() {
			std = append(std, "net/http")
		}
	}
	if f.Listing != nil {
		std = append(std, "os")
		third = append(third, autoroutePkg)
	}
	sort.Strings(std)
	sort.Strings(third)

	var lines []string
	for _, p := range std {
		lines = append(lines, strconv.Quote(p))
	}
	if len(std) > 0 && len(third) > 0 {
		lines = append(lines, "")
	}
	for _, p := range third {
		lines = append(lines, strconv.Quote(p))
	}
	return lines
}

// needsNetHTTP reports whether any route's verb renders as an http.MethodX
// constant; verbs outside the canonical set emit as string literals and do
// not need the import.
func (f File) needsNetHTTP() bool {
	for _, r := range f.Registrations {
		for _, g := range r.Groups {
			for _, e := range g.Routes {
				if _, ok := methodConsts[e.Verb]; ok {
					return true
				}
			}
		}
	}
	return false
}

// Synthesizer renders generated files.
type Synthesizer struct {
	tmpl *template.Template
	log  *zap.Logger
}

// New returns a synthesizer with the file template parsed.
func New(log *zap.Logger) *Synthesizer {
	tmpl := template.Must(template.New("file").Funcs(template.FuncMap{
		"method": methodConst,
	}).Parse(fileTmpl))
	return &Synthesizer{tmpl: tmpl, log: log}
}

// Registration builds the registration routine for p from a single registry
// snapshot. Entries are regrouped by their own scope field with sorted group
// keys, so emission order is reproducible; an unknown module key yields a
// routine with an empty body, not an error.
func (s *Synthesizer) Registration(reg *registry.Registry, p Params) (Registration, error) {
	if p.ModuleKey == "" {
		return Registration{}, &ArgumentError{Field: "module_key", Detail: "a module key is required"}
	}
	name := p.FuncName
	if name == "" {
		name = funcNameFor(p.ModuleKey)
	}
	if !token.IsIdentifier(name) {
		return Registration{}, &ArgumentError{Field: "func", Detail: fmt.Sprintf("%q is not a valid Go identifier", name)}
	}

	snapshot := reg.SnapshotFor(p.ModuleKey)

	byScope := make(map[string][]registry.Entry)
	for _, e := range snapshot {
		byScope[e.Scope] = append(byScope[e.Scope], e)
	}
	keys := make([]string, 0, len(byScope))
	for k := range byScope {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	groups := make([]Group, 0, len(keys))
	for _, k := range keys {
		prefix := ""
		if p.UseScope {
			prefix = k
		}
		groups = append(groups, Group{Prefix: prefix, Routes: byScope[k]})
	}

	s.log.Debug("registration synthesized",
		zap.String("module_key", p.ModuleKey),
		zap.String("func", name),
		zap.Int("groups", len(groups)),
		zap.Int("routes", len(snapshot)),
	)
	return Registration{FuncName: name, ModuleKey: p.ModuleKey, Groups: groups}, nil
}

// Listing builds the diagnostic routine from a single snapshot of the whole
// registry, one row per entry, scopes in sorted order.
func (s *Synthesizer) Listing(reg *registry.Registry, funcName string) (Listing, error) {
	if funcName == "" {
		funcName = "ListRoutes"
	}
	if !token.IsIdentifier(funcName) {
		return Listing{}, &ArgumentError{Field: "func", Detail: fmt.Sprintf("%q is not a valid Go identifier", funcName)}
	}

	all := reg.SnapshotAll()
	scopes := make([]string, 0, len(all))
	total := 0
	for scope, seq := range all {
		scopes = append(scopes, scope)
		total += len(seq)
	}
	sort.Strings(scopes)

	rows := make([]autoroute.Route, 0, total)
	for _, scope := range scopes {
		for _, e := range all[scope] {
			rows = append(rows, autoroute.Route{Scope: scope, Path: e.Path, Handler: e.Handler, Verb: e.Verb})
		}
	}

	s.log.Debug("listing synthesized", zap.String("func", funcName), zap.Int("rows", len(rows)))
	return Listing{FuncName: funcName, Rows: rows}, nil
}

// Render executes the file template for f and formats the result.
func (s *Synthesizer) Render(f File) ([]byte, error) {
	if !token.IsIdentifier(f.PkgName) {
		return nil, &ArgumentError{Field: "package", Detail: fmt.Sprintf("%q is not a valid package name", f.PkgName)}
	}
	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, f); err != nil {
		return nil, fmt.Errorf("render generated file: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated file: %w", err)
	}
	return src, nil
}

// funcNameFor derives a registration routine name from a module key,
// e.g. "/events" yields "RegisterEventsRoutes".
func funcNameFor(key string) string {
	var b bytes.Buffer
	b.WriteString("Register")
	up := true
	for _, r := range key {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			up = true
		case up:
			b.WriteRune(unicode.ToUpper(r))
			up = false
		default:
			b.WriteRune(r)
		}
	}
	b.WriteString("Routes")
	return b.String()
}

var methodConsts = map[string]string{
	"GET":    "http.MethodGet",
	"POST":   "http.MethodPost",
	"PUT":    "http.MethodPut",
	"DELETE": "http.MethodDelete",
	"PATCH":  "http.MethodPatch",
}

// methodConst maps a canonical verb to its net/http constant; anything else
// is emitted as a plain string literal.
func methodConst(verb string) string {
	if c, ok := methodConsts[verb]; ok {
		return c
	}
	return strconv.Quote(verb)
}
