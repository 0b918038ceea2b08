package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestInsertAppendsInOrder(t *testing.T) {
	r := New()
	r.Insert("/events", Entry{Scope: "/events", Handler: "SearchEvents", Path: "/search", Verb: "GET"})
	r.Insert("/events", Entry{Scope: "/events", Handler: "CreateEvent", Path: "", Verb: "POST"})

	got := r.SnapshotFor("/events")
	require.Len(t, got, 2)
	assert.Equal(t, "SearchEvents", got[0].Handler)
	assert.Equal(t, "CreateEvent", got[1].Handler)
}

func TestSnapshotForUnknownScope(t *testing.T) {
	r := New()
	got := r.SnapshotFor("/missing")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSnapshotForReturnsCopy(t *testing.T) {
	r := New()
	r.Insert("/events", Entry{Scope: "/events", Handler: "SearchEvents", Path: "/search", Verb: "GET"})

	first := r.SnapshotFor("/events")
	first[0].Handler = "Clobbered"

	second := r.SnapshotFor("/events")
	assert.Equal(t, "SearchEvents", second[0].Handler)
}

func TestSnapshotAllReturnsDeepCopy(t *testing.T) {
	r := New()
	r.Insert("/events", Entry{Scope: "/events", Handler: "SearchEvents", Path: "/search", Verb: "GET"})

	all := r.SnapshotAll()
	all["/events"][0].Handler = "Clobbered"
	all["/extra"] = []Entry{{Scope: "/extra", Handler: "X", Verb: "GET"}}

	assert.Equal(t, "SearchEvents", r.SnapshotFor("/events")[0].Handler)
	assert.Empty(t, r.SnapshotFor("/extra"))
	assert.Equal(t, 1, r.Len())
}

func TestDuplicateEntriesPreserved(t *testing.T) {
	r := New()
	e := Entry{Scope: "/events", Handler: "SearchEvents", Path: "/search", Verb: "GET"}
	r.Insert("/events", e)
	r.Insert("/events", e)

	assert.Len(t, r.SnapshotFor("/events"), 2)
}

func TestScopesSorted(t *testing.T) {
	r := New()
	for _, scope := range []string{"/venues", "/admin", "/events"} {
		r.Insert(scope, Entry{Scope: scope, Handler: "H", Verb: "GET"})
	}

	assert.Equal(t, []string{"/admin", "/events", "/venues"}, r.Scopes())
}

func TestLenCountsAcrossScopes(t *testing.T) {
	r := New()
	assert.Zero(t, r.Len())

	r.Insert("/events", Entry{Scope: "/events", Handler: "A", Verb: "GET"})
	r.Insert("/events", Entry{Scope: "/events", Handler: "B", Verb: "GET"})
	r.Insert("/venues", Entry{Scope: "/venues", Handler: "C", Verb: "GET"})

	assert.Equal(t, 3, r.Len())
}

func TestConcurrentInsertsAndSnapshots(t *testing.T) {
	r := New()
	scopes := []string{"/events", "/venues", "/admin"}

	var wg sync.WaitGroup
	for i := 0; i < 90; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			scope := scopes[i%len(scopes)]
			r.Insert(scope, Entry{
				Scope:   scope,
				Handler: fmt.Sprintf("Handler%d", i),
				Verb:    "GET",
			})
		}(i)
	}
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.SnapshotAll()
			_ = r.SnapshotFor("/events")
			_ = r.Scopes()
		}()
	}
	wg.Wait()

	assert.Equal(t, 90, r.Len())
}

func TestSnapshotPropertyHolds(t *testing.T) {
	verbGen := rapid.SampledFrom([]string{"GET", "POST", "PUT", "DELETE", "PATCH"})
	scopeGen := rapid.StringMatching(`/[a-z]{1,8}`)

	rapid.Check(t, func(rt *rapid.T) {
		scope := scopeGen.Draw(rt, "scope")
		n := rapid.IntRange(0, 32).Draw(rt, "n")

		r := New()
		want := make([]Entry, 0, n)
		for i := 0; i < n; i++ {
			e := Entry{
				Scope:   scope,
				Handler: fmt.Sprintf("Handler%d", i),
				Path:    rapid.StringMatching(`(/[a-z]{0,6})?`).Draw(rt, "path"),
				Verb:    verbGen.Draw(rt, "verb"),
			}
			want = append(want, e)
			r.Insert(scope, e)
		}

		got := r.SnapshotFor(scope)
		require.Len(rt, got, n)
		require.Equal(rt, want, got)

		// re-reading the snapshot yields equal results
		require.Equal(rt, got, r.SnapshotFor(scope))
	})
}
