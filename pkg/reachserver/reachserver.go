// Package reachserver is the thin HTTP front end around the reachability
// engine: a chi-routed server exposing a single reach-check endpoint, the
// Go sibling of the source's HTTP reach_check API, routed the way
// thousand-worlds's game-server wires chi middleware and routes.
package reachserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/orirando/seedgen/internal/genlog"
	"github.com/orirando/seedgen/pkg/inventory"
	"github.com/orirando/seedgen/pkg/logic"
	"github.com/orirando/seedgen/pkg/orbs"
	"github.com/orirando/seedgen/pkg/reach"
	"github.com/orirando/seedgen/pkg/settings"
	"github.com/orirando/seedgen/pkg/world"
)

// GraphLookup resolves a graph id to a logic.Graph, letting the server
// serve multiple loaded worlds without owning how they were loaded.
type GraphLookup func(graphID string) (*logic.Graph, bool)

// Server answers POST /reach-check against a set of pre-loaded graphs.
type Server struct {
	lookup GraphLookup
	router chi.Router
}

// NewServer builds a Server backed by lookup, with request logging and
// panic recovery wired the way the pack's chi servers do.
func NewServer(lookup GraphLookup) *Server {
	s := &Server{lookup: lookup}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Route("/reach-check", func(r chi.Router) {
		r.Post("/", s.handleReachCheck)
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		genlog.Debug("reach-check request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

// reachCheckRequest is the request body: which graph, the spawn node to
// start from, the world settings to evaluate under, and the inventory to
// assume the player holds.
type reachCheckRequest struct {
	GraphID   string                  `json:"graph_id"`
	SpawnNode int                     `json:"spawn_node"`
	Settings  *settings.WorldSettings `json:"settings"`
	Items     []inventoryItemDoc      `json:"items"`
}

type inventoryItemDoc struct {
	Identifier string `json:"identifier"`
	Amount     int    `json:"amount"`
}

type reachCheckResponse struct {
	Reached []string `json:"reached"`
}

func (s *Server) handleReachCheck(w http.ResponseWriter, r *http.Request) {
	var req reachCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	g, ok := s.lookup(req.GraphID)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown graph id")
		return
	}
	if req.SpawnNode < 0 || req.SpawnNode >= g.Len() {
		writeError(w, http.StatusBadRequest, "spawn node out of range")
		return
	}

	ws := req.Settings
	if ws == nil {
		ws = settings.NewWorldSettings()
	}

	wd := world.New(g, ws)
	for _, item := range req.Items {
		it, err := resolveInventoryItem(item)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		amount := item.Amount
		if amount <= 0 {
			amount = 1
		}
		wd.Inventory.Grant(it, amount)
	}

	result := reach.Reach(g, wd, req.SpawnNode, orbs.New(wd.Inventory.MaxOrbs()), false)

	resp := reachCheckResponse{Reached: make([]string, 0, len(result.Reached))}
	for _, idx := range result.Reached {
		resp.Reached = append(resp.Reached, g.Nodes[idx].Identifier)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func resolveInventoryItem(doc inventoryItemDoc) (inventory.Item, error) {
	return inventory.ParseItem(doc.Identifier)
}
