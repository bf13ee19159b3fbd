package reachserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orirando/seedgen/pkg/logic"
	"github.com/orirando/seedgen/pkg/requirement"
	"github.com/orirando/seedgen/pkg/seeddata"
)

func buildTestGraph(t *testing.T) *logic.Graph {
	t.Helper()
	g := logic.NewGraph()
	spawn := logic.NewAnchor("Spawn")
	spawn.CanSpawn = true
	spawnIdx, err := g.AddNode(spawn)
	require.NoError(t, err)

	pickupIdx, err := g.AddNode(logic.NewPickup("Pickup1", "Marsh", "1:1"))
	require.NoError(t, err)

	require.NoError(t, g.AddConnection(spawnIdx, logic.Connection{Target: pickupIdx, Requirement: requirement.Free()}))
	return g
}

func TestHandleReachCheckReturnsReachedNodes(t *testing.T) {
	g := buildTestGraph(t)
	srv := NewServer(func(id string) (*logic.Graph, bool) {
		if id == "test-world" {
			return g, true
		}
		return nil, false
	})

	body, err := json.Marshal(reachCheckRequest{GraphID: "test-world", SpawnNode: g.Index("Spawn")})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/reach-check/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp reachCheckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Reached, "Pickup1")
}

func TestHandleReachCheckUnknownGraphReturns404(t *testing.T) {
	srv := NewServer(func(string) (*logic.Graph, bool) { return nil, false })

	body, _ := json.Marshal(reachCheckRequest{GraphID: "missing"})
	req := httptest.NewRequest(http.MethodPost, "/reach-check/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleReachCheckInvalidBodyReturns400(t *testing.T) {
	g := buildTestGraph(t)
	srv := NewServer(func(string) (*logic.Graph, bool) { return g, true })

	req := httptest.NewRequest(http.MethodPost, "/reach-check/", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleReachCheckGrantsRequestedItems(t *testing.T) {
	g := logic.NewGraph()
	spawn := logic.NewAnchor("Spawn")
	spawn.CanSpawn = true
	spawnIdx, err := g.AddNode(spawn)
	require.NoError(t, err)
	gate, err := g.AddNode(logic.NewPickup("Gated", "Marsh", "1:2"))
	require.NoError(t, err)
	require.NoError(t, g.AddConnection(spawnIdx, logic.Connection{Target: gate, Requirement: requirement.SkillReq(seeddata.SkillBash)}))

	srv := NewServer(func(string) (*logic.Graph, bool) { return g, true })

	body, _ := json.Marshal(reachCheckRequest{
		SpawnNode: spawnIdx,
		Items:     []inventoryItemDoc{{Identifier: "Skill(Bash)", Amount: 1}},
	})
	req := httptest.NewRequest(http.MethodPost, "/reach-check/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp reachCheckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Reached, "Gated")
}
