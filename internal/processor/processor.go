// Package processor validates annotated handler declarations and files their
// route metadata in the registry. It runs once per discovered declaration and
// never modifies the declaration itself; any validation failure is fatal to
// the enclosing build pass.
package processor

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"go.uber.org/zap"

	"github.com/nulzo/routegen/internal/annotation"
	"github.com/nulzo/routegen/internal/registry"
)

// Declaration is one discovered handler declaration together with the
// routegen directives found in its doc comment.
type Declaration struct {
	Name       string
	Pos        token.Position
	Directives []annotation.Directive
}

// Processor turns declarations into registry entries.
type Processor struct {
	reg      *registry.Registry
	validate *validator.Validate
	trans    ut.Translator
	log      *zap.Logger
}

// New returns a processor inserting into reg.
func New(reg *registry.Registry, log *zap.Logger) *Processor {
	v := validator.New()

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, trans)

	return &Processor{reg: reg, validate: v, trans: trans, log: log}
}

// Process validates d, builds a registry entry from its directives and files
// it under the declared scope. Exactly one insertion happens on success;
// nothing is inserted on error.
func (p *Processor) Process(d Declaration) error {
	scope, err := p.scopeOf(d)
	if err != nil {
		return err
	}
	path, verb, err := p.routeOf(d)
	if err != nil {
		return err
	}

	entry := registry.Entry{
		Scope:   scope,
		Handler: d.Name,
		Path:    path,
		Verb:    verb,
	}
	if err := p.validate.Struct(&entry); err != nil {
		return p.entryError(d, err)
	}

	p.reg.Insert(entry.Scope, entry)
	p.log.Debug("route registered",
		zap.String("handler", entry.Handler),
		zap.String("scope", entry.Scope),
		zap.String("verb", entry.Verb),
		zap.String("path", entry.Path),
	)
	return nil
}

// scopeOf extracts the scope argument from the register directive.
func (p *Processor) scopeOf(d Declaration) (string, error) {
	var regs []annotation.Directive
	for _, dir := range d.Directives {
		if dir.Name == annotation.Register {
			regs = append(regs, dir)
		}
	}
	switch {
	case len(regs) == 0:
		return "", &MissingScopeError{Handler: d.Name, Pos: d.Pos, Reason: "no register directive"}
	case len(regs) > 1:
		return "", &MissingScopeError{Handler: d.Name, Pos: regs[1].Pos, Reason: fmt.Sprintf("register directive appears %d times", len(regs))}
	case !regs[0].ArgOK:
		return "", &MissingScopeError{Handler: d.Name, Pos: regs[0].Pos, Reason: "register directive needs a string-literal argument"}
	}
	return regs[0].Arg, nil
}

// routeOf extracts the path and canonical verb from the single verb
// directive. Unknown directive names are rejected rather than skipped, so a
// typo can never silently drop a route.
func (p *Processor) routeOf(d Declaration) (path, verb string, err error) {
	var vds []annotation.Directive
	for _, dir := range d.Directives {
		if dir.Name == annotation.Register {
			continue
		}
		if _, ok := annotation.Verb(dir.Name); !ok {
			return "", "", &RouteMetadataError{
				Handler: d.Name,
				Pos:     dir.Pos,
				Reason:  fmt.Sprintf("unknown directive %s%s", annotation.Prefix, dir.Name),
			}
		}
		vds = append(vds, dir)
	}
	switch {
	case len(vds) == 0:
		return "", "", &RouteMetadataError{Handler: d.Name, Pos: d.Pos, Reason: "no verb directive"}
	case len(vds) > 1:
		return "", "", &RouteMetadataError{
			Handler: d.Name,
			Pos:     vds[1].Pos,
			Reason:  fmt.Sprintf("expected exactly one verb directive, found %d", len(vds)),
		}
	case !vds[0].ArgOK:
		return "", "", &RouteMetadataError{
			Handler: d.Name,
			Pos:     vds[0].Pos,
			Reason:  fmt.Sprintf("%s directive needs a path string (use \"\" for the scope root)", vds[0].Name),
		}
	}
	// the vocabulary maps lowercase directive names to canonical uppercase verbs
	verb, _ = annotation.Verb(vds[0].Name)
	return vds[0].Arg, verb, nil
}

// entryError maps field-level validation failures back onto the directive
// error types, with translated human-readable messages.
func (p *Processor) entryError(d Declaration, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("handler %s: %w", d.Name, err)
	}

	var reasons []string
	for _, fe := range verrs {
		msg := fe.Translate(p.trans)
		if fe.Tag() == "oneof" {
			msg = fmt.Sprintf("%s must be one of [%s]", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
		}
		if fe.Field() == "Scope" {
			return &MissingScopeError{Handler: d.Name, Pos: d.Pos, Reason: strings.ToLower(msg)}
		}
		reasons = append(reasons, strings.ToLower(msg))
	}
	return &RouteMetadataError{Handler: d.Name, Pos: d.Pos, Reason: strings.Join(reasons, "; ")}
}
