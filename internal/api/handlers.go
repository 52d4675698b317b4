package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dusk-indust/ignoremerge/internal/export"
	"github.com/dusk-indust/ignoremerge/internal/ignorefile"
)

type mergeRequest struct {
	Sources []string `json:"sources"`
	Options struct {
		Sort          *bool `json:"sort"`
		MergeSections *bool `json:"mergeSections"`
		MergeBlocks   *bool `json:"mergeBlocks"`
	} `json:"options"`
}

type parseRequest struct {
	Source string `json:"source"`
}

func (s *Server) handleMerge(w http.ResponseWriter, r *http.Request) {
	var req mergeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.Sources) == 0 {
		jsonError(w, "sources is required", http.StatusBadRequest)
		return
	}

	opts := s.defaults
	if req.Options.Sort != nil {
		opts.Sort = *req.Options.Sort
	}
	if req.Options.MergeSections != nil {
		opts.MergeSections = *req.Options.MergeSections
	}
	if req.Options.MergeBlocks != nil {
		opts.MergeBlocks = *req.Options.MergeBlocks
	}

	out := ignorefile.MergeFiles(opts, req.Sources...)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(out + "\n"))
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(export.ExportDocument(ignorefile.ParseString(req.Source)))
}

// decodeJSON decodes the request body into v, writing an error response and
// returning false on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		jsonError(w, "request body too large", http.StatusRequestEntityTooLarge)
		return false
	}
	jsonError(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
	return false
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
