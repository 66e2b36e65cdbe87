package pbi

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup_ForwardsWorkspace(t *testing.T) {
	var mu sync.Mutex
	seen := map[string]string{}

	_, cl := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		seen[r.Method+" "+r.URL.Path] = string(body)
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{})
	})
	ctx := testContext(t)
	g := cl.Group("g1")

	_, err := g.Reports(ctx)
	require.NoError(t, err)
	_, err = g.EmbedToken(ctx, "r1", "edit")
	require.NoError(t, err)
	_, err = g.Rebind(ctx, "r1", "d1")
	require.NoError(t, err)

	assert.Contains(t, seen, "GET /v1.0/myorg/groups/g1/reports")
	assert.JSONEq(t, `{"accessLevel":"edit"}`, seen["POST /v1.0/myorg/groups/g1/reports/r1/GenerateToken"])
	assert.JSONEq(t, `{"datasetId":"d1"}`, seen["POST /v1.0/myorg/groups/g1/reports/r1/"])
}

func TestReports_ConcurrentUse(t *testing.T) {
	_, cl := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ReportList{Value: []Report{{ID: "r1"}}})
	})
	reports := cl.Reports()
	ctx := testContext(t)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := Decode[ReportList](reports.List(ctx, "g1"))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}
