// Package pipeline runs one complete build pass: a scan phase that fills the
// registry in a stable order, then a synthesis phase that renders the
// generated file and writes it into the scanned package. The first error at
// any point aborts the pass and no output is written.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nulzo/routegen/internal/config"
	"github.com/nulzo/routegen/internal/processor"
	"github.com/nulzo/routegen/internal/registry"
	"github.com/nulzo/routegen/internal/scanner"
	"github.com/nulzo/routegen/internal/synthesis"
	"github.com/nulzo/routegen/pkg/autoroute"
)

// Result summarizes a completed pass.
type Result struct {
	Package string
	Entries int
	Targets int
	Output  string
}

// Pass owns the registry for one run. A pass is single-use: call Run or
// Rows exactly once, then discard it.
type Pass struct {
	cfg *config.Config
	log *zap.Logger
	reg *registry.Registry
}

// New returns a pass for cfg with a fresh registry.
func New(cfg *config.Config, log *zap.Logger) *Pass {
	id := uuid.NewString()[:8]
	return &Pass{
		cfg: cfg,
		log: log.With(zap.String("pass", id)),
		reg: registry.New(),
	}
}

// Run executes the scan phase, then synthesizes every configured target plus
// the optional listing, and writes the generated file.
func (p *Pass) Run(ctx context.Context) (*Result, error) {
	pkg, err := p.scan(ctx)
	if err != nil {
		return nil, err
	}

	if len(p.cfg.Targets) == 0 {
		return nil, &synthesis.ArgumentError{Field: "targets", Detail: "at least one module key must be configured"}
	}

	syn := synthesis.New(p.log)
	file := synthesis.File{PkgName: pkg.Name}
	for i, t := range p.cfg.Targets {
		reg, err := syn.Registration(p.reg, synthesis.Params{
			ModuleKey: t.ModuleKey,
			UseScope:  t.UseScope,
			FuncName:  t.Func,
		})
		if err != nil {
			return nil, fmt.Errorf("target %d: %w", i, err)
		}
		file.Registrations = append(file.Registrations, reg)
	}
	if p.cfg.Listing.Enabled {
		lst, err := syn.Listing(p.reg, p.cfg.Listing.Func)
		if err != nil {
			return nil, err
		}
		file.Listing = &lst
	}

	src, err := syn.Render(file)
	if err != nil {
		return nil, err
	}

	out := filepath.Join(pkg.Dir, p.cfg.Output.File)
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", out, err)
	}

	p.log.Info("build pass complete",
		zap.String("package", pkg.Name),
		zap.Int("entries", p.reg.Len()),
		zap.Int("targets", len(p.cfg.Targets)),
		zap.String("output", out),
	)
	return &Result{
		Package: pkg.Name,
		Entries: p.reg.Len(),
		Targets: len(p.cfg.Targets),
		Output:  out,
	}, nil
}

// Rows runs only the scan phase and returns the table rows the generated
// listing routine would print. Nothing is written.
func (p *Pass) Rows(ctx context.Context) ([]autoroute.Route, error) {
	if _, err := p.scan(ctx); err != nil {
		return nil, err
	}
	lst, err := synthesis.New(p.log).Listing(p.reg, p.cfg.Listing.Func)
	if err != nil {
		return nil, err
	}
	return lst.Rows, nil
}

func (p *Pass) scan(ctx context.Context) (*scanner.Package, error) {
	proc := processor.New(p.reg, p.log)
	sc := scanner.New(proc, p.log, p.cfg.Output.File)
	return sc.Scan(ctx, p.cfg.Scan.Root)
}
