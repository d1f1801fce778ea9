package server

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/huangsam/foodsec/core"
	"github.com/huangsam/foodsec/dataset"
	"github.com/huangsam/foodsec/internal/loader"
	"github.com/huangsam/foodsec/schema"
)

// requestSource names datasets posted in a request body.
const requestSource = "request"

// ClassifyRequest is the body of POST /v1/indicators/{key}/classify.
// A null score is classified as missing.
type ClassifyRequest struct {
	Scores  []*float64     `json:"scores"`
	Variant schema.Variant `json:"variant"`
}

// ClassifyResponse is the reply of POST /v1/indicators/{key}/classify.
type ClassifyResponse struct {
	Indicator schema.IndicatorKey `json:"indicator"`
	Variant   schema.Variant      `json:"variant"`
	Labels    []schema.Label      `json:"labels"`
}

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Error   string   `json:"error"`
	Columns []string `json:"columns,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) healthCheck(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "healthy",
		"version":    s.version,
		"indicators": len(core.Indicators()),
	})
}

func (s *Server) listIndicators(w http.ResponseWriter, _ *http.Request) {
	var defs []schema.IndicatorDefinition
	for _, ind := range core.Indicators() {
		defs = append(defs, core.Describe(ind))
	}
	writeJSON(w, http.StatusOK, map[string]any{"indicators": defs})
}

// lookupIndicator resolves the {key} URL parameter or writes a 404.
func lookupIndicator(w http.ResponseWriter, r *http.Request) (core.Indicator, bool) {
	ind, err := core.Lookup(schema.IndicatorKey(chi.URLParam(r, "key")))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return nil, false
	}
	return ind, true
}

// readTable parses a CSV request body or writes a 400.
func readTable(w http.ResponseWriter, r *http.Request) (*dataset.Frame, bool) {
	frame, err := loader.ReadCSV(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid CSV body: "+err.Error())
		return nil, false
	}
	return frame, true
}

func (s *Server) validateDataset(w http.ResponseWriter, r *http.Request) {
	ind, ok := lookupIndicator(w, r)
	if !ok {
		return
	}
	table, ok := readTable(w, r)
	if !ok {
		return
	}

	report := core.ValidateJob(core.Job{Source: requestSource, Table: table, Indicator: ind})
	s.metrics.observeValidation(string(ind.Key()), report.Valid)
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) calculateIndicator(w http.ResponseWriter, r *http.Request) {
	ind, ok := lookupIndicator(w, r)
	if !ok {
		return
	}
	variant := schema.Variant(r.URL.Query().Get("variant"))
	if _, known := ind.Thresholds()[core.ResolveVariant(ind, variant)]; !known {
		writeError(w, http.StatusBadRequest, core.ErrUnknownVariant.Error()+" "+string(variant))
		return
	}
	table, ok := readTable(w, r)
	if !ok {
		return
	}

	jr := core.Evaluate(core.Job{Source: requestSource, Table: table, Indicator: ind, Variant: variant})
	if jr.Err != nil {
		var verr *core.ValidationError
		if errors.As(jr.Err, &verr) {
			s.metrics.observeValidation(string(ind.Key()), false)
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: verr.Error(), Columns: verr.Columns})
			return
		}
		writeError(w, http.StatusBadRequest, jr.Err.Error())
		return
	}

	result := core.BuildResult(jr)
	s.metrics.observeValidation(string(ind.Key()), true)
	s.metrics.observeLabels(string(ind.Key()), countsByName(result.Counts))
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) classifyScores(w http.ResponseWriter, r *http.Request) {
	ind, ok := lookupIndicator(w, r)
	if !ok {
		return
	}
	var req ClassifyRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	scores := make(core.Scores, len(req.Scores))
	for i, sc := range req.Scores {
		if sc == nil {
			scores[i] = math.NaN()
			continue
		}
		scores[i] = *sc
	}
	classes, err := ind.Classify(scores, req.Variant)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	counts := make(map[string]int)
	for _, c := range classes {
		counts[string(c)]++
	}
	s.metrics.observeLabels(string(ind.Key()), counts)
	writeJSON(w, http.StatusOK, ClassifyResponse{
		Indicator: ind.Key(),
		Variant:   core.ResolveVariant(ind, req.Variant),
		Labels:    classes,
	})
}

func countsByName(counts map[schema.Label]int) map[string]int {
	out := make(map[string]int, len(counts))
	for label, n := range counts {
		out[string(label)] = n
	}
	return out
}
