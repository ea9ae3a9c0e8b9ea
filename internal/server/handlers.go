package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ComputerConnection/flowgrid/pkg/cache"
	"github.com/ComputerConnection/flowgrid/pkg/errors"
	"github.com/ComputerConnection/flowgrid/pkg/flow"
	"github.com/ComputerConnection/flowgrid/pkg/pipeline"
)

// maxBodyBytes caps request bodies. Graphs at the node limit fit well
// under this.
const maxBodyBytes = 8 << 20

// layoutRequest is the body for POST /api/v1/layout and /api/v1/render.
type layoutRequest struct {
	Graph   flow.Graph       `json:"graph"`
	Options pipeline.Options `json:"options"`
}

// layoutResponse is the body for POST /api/v1/layout.
type layoutResponse struct {
	Graph     flow.Graph        `json:"graph"`
	GraphHash string            `json:"graph_hash,omitempty"`
	CacheHit  bool              `json:"cache_hit"`
	Stats     pipelineStatsJSON `json:"stats"`
}

type pipelineStatsJSON struct {
	NodeCount int `json:"node_count"`
	EdgeCount int `json:"edge_count"`
}

// validateRequest is the body for POST /api/v1/validate.
type validateRequest struct {
	Graph flow.Graph `json:"graph"`
}

// validateResponse is the body for POST /api/v1/validate.
type validateResponse struct {
	Valid  bool       `json:"valid"`
	Error  string     `json:"error,omitempty"`
	Levels [][]string `json:"levels,omitempty"`
}

// graphRequest is the body for graph create/update.
type graphRequest struct {
	Name  string     `json:"name"`
	Graph flow.Graph `json:"graph"`
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := errors.ValidateGraph(req.Graph); err != nil {
		writeError(w, err)
		return
	}
	if err := req.Options.ValidateForLayout(); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidPreset, err, "invalid layout options"))
		return
	}

	laid, hit, err := s.runner.ComputeLayoutWithCacheInfo(r.Context(), req.Graph, req.Options)
	if err != nil {
		writeError(w, err)
		return
	}

	var graphHash string
	if data, err := flow.MarshalGraph(req.Graph); err == nil {
		graphHash = cache.Hash(data)
	}

	writeJSON(w, http.StatusOK, layoutResponse{
		Graph:     laid,
		GraphHash: graphHash,
		CacheHit:  hit,
		Stats: pipelineStatsJSON{
			NodeCount: len(laid.Nodes),
			EdgeCount: len(laid.Edges),
		},
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := errors.ValidateGraph(req.Graph); err != nil {
		writeError(w, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), req.Graph, req.Options)
	if err != nil {
		writeError(w, err)
		return
	}

	// Single-format requests return the raw artifact with its content
	// type; multi-format requests return a JSON object of artifacts.
	if len(result.Artifacts) == 1 {
		for format, data := range result.Artifacts {
			w.Header().Set("Content-Type", contentTypeFor(format))
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(data)
			return
		}
	}
	writeJSON(w, http.StatusOK, result.Artifacts)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	topo, err := flow.NewTopology(req.Graph.Nodes, req.Graph.Edges)
	if err != nil {
		writeJSON(w, http.StatusOK, validateResponse{Valid: false, Error: err.Error()})
		return
	}

	levels, err := topo.ExecutionLevels()
	if err != nil {
		writeJSON(w, http.StatusOK, validateResponse{Valid: false, Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, validateResponse{Valid: true, Levels: levels})
}

func (s *Server) handleCreateGraph(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "graph storage is not configured"})
		return
	}

	var req graphRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := errors.ValidateGraph(req.Graph); err != nil {
		writeError(w, err)
		return
	}

	rec, err := s.store.Create(r.Context(), req.Name, req.Graph)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleListGraphs(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "graph storage is not configured"})
		return
	}

	recs, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handleGetGraph(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "graph storage is not configured"})
		return
	}

	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleUpdateGraph(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "graph storage is not configured"})
		return
	}

	var req graphRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := errors.ValidateGraph(req.Graph); err != nil {
		writeError(w, err)
		return
	}

	rec, err := s.store.Update(r.Context(), chi.URLParam(r, "id"), req.Name, req.Graph)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteGraph(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "graph storage is not configured"})
		return
	}

	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeBody parses a JSON request body into dst, writing a 400 on
// failure. The return value reports success.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps error codes to HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidGraph,
		errors.ErrCodeInvalidPreset, errors.ErrCodeInvalidFormat,
		errors.ErrCodeGraphCycle:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeGraphNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{"error": errors.UserMessage(err)})
}

func contentTypeFor(format string) string {
	switch format {
	case pipeline.FormatSVG:
		return "image/svg+xml"
	case pipeline.FormatPNG:
		return "image/png"
	case pipeline.FormatDOT:
		return "text/vnd.graphviz"
	default:
		return "application/json"
	}
}
