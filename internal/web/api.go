package web

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/petrotech/petrotech/internal/catalog"
	"github.com/petrotech/petrotech/internal/output"
)

type categoryInfo struct {
	catalog.Category
	Tools int `json:"tools"`
}

type apiError struct {
	Error string `json:"error"`
}

func (s *Server) handleListTools(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, output.NewSearchResult(s.catalog, s.stateFrom(r)))
}

func (s *Server) handleGetTool(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	tool, ok := s.catalog.Tool(id)
	if !ok {
		s.writeJSON(w, http.StatusNotFound, apiError{Error: "tool not found: " + id})
		return
	}
	s.writeJSON(w, http.StatusOK, output.NewToolDetail(s.catalog, tool))
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	counts := make(map[string]int)
	for _, t := range s.catalog.Tools() {
		counts[t.Category]++
	}
	cats := s.catalog.Categories()
	info := make([]categoryInfo, len(cats))
	for i, c := range cats {
		info[i] = categoryInfo{Category: c, Tools: counts[c.ID]}
	}
	s.writeJSON(w, http.StatusOK, info)
}

func (s *Server) handleListTags(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.catalog.Tags())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "tools": s.catalog.Len()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("encode response", zap.Error(err))
	}
}
