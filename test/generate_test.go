package test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nulzo/routegen/internal/config"
	"github.com/nulzo/routegen/internal/pipeline"
	"github.com/nulzo/routegen/pkg/autoroute"
)

const handlersDir = "../examples/eventsvc/handlers"

// copySources stages the annotated handler sources, but not the generated
// file, into a scratch dir so the pass cannot touch the checked-in output.
func copySources(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	entries, err := os.ReadDir(handlersDir)
	require.NoError(t, err)
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".go" || e.Name() == "routes.gen.go" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(handlersDir, e.Name()))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, e.Name()), data, 0o644))
	}
	return dir
}

func exampleConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load(filepath.Join(handlersDir, ".routegen.yaml"))
	require.NoError(t, err)
	cfg.Scan.Root = copySources(t)
	return cfg
}

func TestGeneratedFileIsCurrent(t *testing.T) {
	cfg := exampleConfig(t)

	res, err := pipeline.New(cfg, zap.NewNop()).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "handlers", res.Package)
	assert.Equal(t, 5, res.Entries)
	assert.Equal(t, 2, res.Targets)

	got, err := os.ReadFile(res.Output)
	require.NoError(t, err)
	want, err := os.ReadFile(filepath.Join(handlersDir, "routes.gen.go"))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got),
		"checked-in routes.gen.go is stale, rerun go generate ./examples/eventsvc/handlers")
}

func TestExampleRouteTable(t *testing.T) {
	cfg := exampleConfig(t)

	rows, err := pipeline.New(cfg, zap.NewNop()).Rows(context.Background())
	require.NoError(t, err)

	want := []autoroute.Route{
		{Scope: "/events", Path: "/search", Handler: "SearchEvents", Verb: "GET"},
		{Scope: "/events", Path: "/:id", Handler: "GetEvent", Verb: "GET"},
		{Scope: "/events", Path: "", Handler: "CreateEvent", Verb: "POST"},
		{Scope: "/venues", Path: "/nearby", Handler: "NearbyVenues", Verb: "GET"},
		{Scope: "/venues", Path: "", Handler: "CreateVenue", Verb: "POST"},
	}
	assert.Equal(t, want, rows)
}
