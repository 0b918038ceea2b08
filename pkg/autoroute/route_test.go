package autoroute

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTableBannerFirst(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, []Route{
		{Scope: "/events", Path: "/search", Handler: "SearchEvents", Verb: "GET"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, Banner, lines[0])
	assert.Contains(t, lines[1], "SCOPE")
	assert.Contains(t, lines[1], "VERB")
}

func TestWriteTableOneRowPerRoute(t *testing.T) {
	routes := []Route{
		{Scope: "/events", Path: "/search", Handler: "SearchEvents", Verb: "GET"},
		{Scope: "/events", Path: "", Handler: "CreateEvent", Verb: "POST"},
		{Scope: "/venues", Path: "/nearby", Handler: "NearbyVenues", Verb: "GET"},
	}

	var buf bytes.Buffer
	WriteTable(&buf, routes)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// banner + header + one line per route
	require.Len(t, lines, 2+len(routes))

	for i, r := range routes {
		row := lines[2+i]
		assert.Contains(t, row, r.Handler)
		assert.Contains(t, row, r.Verb)
		assert.True(t, strings.HasPrefix(row, r.Scope), "row should lead with scope: %q", row)
	}
}

func TestWriteTableDuplicateRowsKept(t *testing.T) {
	r := Route{Scope: "/events", Path: "/search", Handler: "SearchEvents", Verb: "GET"}

	var buf bytes.Buffer
	WriteTable(&buf, []Route{r, r})

	assert.Equal(t, 2, strings.Count(buf.String(), "SearchEvents"))
}

func TestWriteTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, nil)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, Banner, lines[0])
}
