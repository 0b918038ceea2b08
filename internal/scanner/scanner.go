// Package scanner walks one package directory for annotated handler
// declarations and hands each one to the processor. Files are parsed
// concurrently but declarations are processed in lexical file order, then
// source order within a file, so registry insertion order is stable across
// runs.
package scanner

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nulzo/routegen/internal/annotation"
	"github.com/nulzo/routegen/internal/processor"
)

// Package describes the package one scan walked.
type Package struct {
	Name  string   // package name from the AST
	Dir   string   // the scanned directory
	Files []string // scanned file paths, lexical order
	Decls int      // handler declarations processed
}

// Scanner discovers annotated declarations. Only package-level functions
// without receivers are candidates, since generated code refers to handlers
// by bare identifier.
type Scanner struct {
	proc    *processor.Processor
	log     *zap.Logger
	exclude map[string]bool
}

// New returns a scanner feeding proc. Base file names in exclude are
// skipped, typically the generated output file of a previous run.
func New(proc *processor.Processor, log *zap.Logger, exclude ...string) *Scanner {
	ex := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		ex[name] = true
	}
	return &Scanner{proc: proc, log: log, exclude: ex}
}

// Scan parses every Go file in dir and processes each annotated declaration.
// Files carrying a standard generated-code header are parsed for package
// consensus but never processed. A directive that is not the doc comment of
// a package-level function fails the scan rather than being skipped. The
// first parse or validation error aborts the scan; nothing about the scanned
// files is ever modified.
func (s *Scanner) Scan(ctx context.Context, dir string) (*Package, error) {
	files, err := s.listGoFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no Go files in %s", dir)
	}

	fset := token.NewFileSet()
	parsed := make([]*ast.File, len(files))

	g, _ := errgroup.WithContext(ctx)
	for i, path := range files {
		g.Go(func() error {
			f, err := parser.ParseFile(fset, path, nil, parser.ParseComments|parser.SkipObjectResolution)
			if err != nil {
				return err
			}
			parsed[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	pkg := &Package{Dir: dir, Files: files}
	for i, f := range parsed {
		name := f.Name.Name
		if pkg.Name == "" {
			pkg.Name = name
		} else if name != pkg.Name {
			return nil, fmt.Errorf("scan %s: found packages %s and %s", dir, pkg.Name, name)
		}

		if ast.IsGenerated(f) {
			s.log.Debug("generated file skipped", zap.String("file", files[i]))
			continue
		}

		n, err := s.processFile(fset, f)
		if err != nil {
			return nil, err
		}
		s.log.Debug("file scanned", zap.String("file", files[i]), zap.Int("handlers", n))
		pkg.Decls += n
	}

	s.log.Info("scan complete",
		zap.String("dir", dir),
		zap.String("package", pkg.Name),
		zap.Int("files", len(pkg.Files)),
		zap.Int("handlers", pkg.Decls),
	)
	return pkg, nil
}

func (s *Scanner) processFile(fset *token.FileSet, f *ast.File) (int, error) {
	n := 0
	consumed := make(map[*ast.CommentGroup]bool)
	for _, decl := range f.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		dirs := annotation.FromDoc(fset, fn.Doc)
		if len(dirs) == 0 {
			continue
		}
		if fn.Recv != nil {
			return n, &StrayDirectiveError{Pos: dirs[0].Pos, Raw: dirs[0].Raw, Method: fn.Name.Name}
		}
		consumed[fn.Doc] = true
		d := processor.Declaration{
			Name:       fn.Name.Name,
			Pos:        fset.Position(fn.Pos()),
			Directives: dirs,
		}
		if err := s.proc.Process(d); err != nil {
			return n, err
		}
		n++
	}

	// Directive groups the declaration pass did not consume, such as a group
	// detached from its func by a blank line or the doc of a type or var
	// declaration, can never register a route.
	for _, g := range f.Comments {
		if consumed[g] {
			continue
		}
		if dirs := annotation.FromDoc(fset, g); len(dirs) > 0 {
			return n, &StrayDirectiveError{Pos: dirs[0].Pos, Raw: dirs[0].Raw}
		}
	}
	return n, nil
}

// listGoFiles returns the scannable Go files of dir in lexical order,
// skipping tests, dot and underscore files, and excluded names.
func (s *Scanner) listGoFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || s.exclude[name] {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	sort.Strings(files)
	return files, nil
}
