package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/ericksa/contractlens/internal/audit"
	"github.com/ericksa/contractlens/internal/config"
	"github.com/ericksa/contractlens/internal/documents"
	"github.com/ericksa/contractlens/internal/history"
	"github.com/ericksa/contractlens/internal/knowledge"
	"github.com/ericksa/contractlens/internal/middleware"
	"github.com/ericksa/contractlens/internal/report"
	"github.com/ericksa/contractlens/internal/workers"
	"github.com/ericksa/contractlens/pkg/mcp"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type auditLog interface {
	GetLogs(ctx context.Context, limit int) ([]audit.Entry, error)
}

type gateway struct {
	contracts *workers.ContractWorker
	knowledge *workers.KnowledgeWorker
	kb        *knowledge.Base
	audit     auditLog
	mcp       *mcp.Handler
	config    *config.ConfigAPI
	log       *logrus.Entry
}

func (g *gateway) router() *mux.Router {
	cfg := g.config.Snapshot()

	router := mux.NewRouter()
	middleware.Register(router, g.log)
	router.Use(mux.MiddlewareFunc(middleware.CORS(nil)))
	router.Use(mux.MiddlewareFunc(middleware.AuthMiddleware(cfg.Auth)))

	// MCP endpoint
	router.PathPrefix("/mcp").Handler(g.mcp)

	// Health endpoint
	router.HandleFunc("/health", healthHandler).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/analyze", g.analyzeHandler).Methods("POST")
	api.HandleFunc("/translate", g.translateHandler).Methods("POST")
	api.HandleFunc("/analyses", g.listHandler).Methods("GET")
	api.HandleFunc("/analyses/{id}", g.getHandler).Methods("GET")
	api.HandleFunc("/analyses/{id}/report", g.reportHandler).Methods("GET")
	api.HandleFunc("/analyses/{id}/tips", g.tipsHandler).Methods("GET")
	api.HandleFunc("/knowledge/{contract_type}", g.knowledgeHandler).Methods("GET")
	api.HandleFunc("/audit", g.auditHandler).Methods("GET")

	// Tools endpoints
	router.HandleFunc("/tools", g.listToolsHandler).Methods("GET")
	router.HandleFunc("/tools/{worker}/{tool}", g.executeToolHandler).Methods("POST")

	// Configuration API
	g.config.Register(router)

	return router
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (g *gateway) analyzeHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text     string `json:"text"`
		FileName string `json:"file_name"`
	}
	if !g.decodeBody(w, r, &req) {
		return
	}
	a, err := g.contracts.Analyze(r.Context(), req.Text, req.FileName)
	if err != nil {
		g.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (g *gateway) translateHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if !g.decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"text": g.contracts.Translate(r.Context(), req.Text)})
}

func (g *gateway) listHandler(w http.ResponseWriter, r *http.Request) {
	limit, ok := g.limit(w, r)
	if !ok {
		return
	}
	rows, err := g.contracts.List(r.Context(), limit)
	if err != nil {
		g.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (g *gateway) getHandler(w http.ResponseWriter, r *http.Request) {
	a, err := g.contracts.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		g.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// tipsHandler returns the negotiation tips that apply to the clause types
// found in a saved analysis.
func (g *gateway) tipsHandler(w http.ResponseWriter, r *http.Request) {
	a, err := g.contracts.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		g.writeError(w, err)
		return
	}
	tips := g.kb.TipsForAnalysis(a)
	if tips == nil {
		tips = []knowledge.TipSet{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": a.ID, "negotiation_tips": tips})
}

func (g *gateway) reportHandler(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("format")
	if name == "" {
		name = g.config.Snapshot().Report.DefaultFormat
	}
	f, err := report.ParseFormat(name)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	body, contentType, err := g.contracts.Report(r.Context(), mux.Vars(r)["id"], f)
	if err != nil {
		g.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (g *gateway) knowledgeHandler(w http.ResponseWriter, r *http.Request) {
	t, err := workers.ParseContractType(mux.Vars(r)["contract_type"])
	if err != nil {
		g.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"contract_type": t,
		"display_name":  t.DisplayName(),
		"issues":        g.knowledge.Issues(t),
		"statutes":      g.kb.Statutes(),
	})
}

func (g *gateway) auditHandler(w http.ResponseWriter, r *http.Request) {
	limit, ok := g.limit(w, r)
	if !ok {
		return
	}
	entries, err := g.audit.GetLogs(r.Context(), limit)
	if err != nil {
		g.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (g *gateway) listToolsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"tools": g.mcp.Tools()})
}

func (g *gateway) executeToolHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, g.config.Snapshot().Server.MaxBodyBytes))
	if err != nil {
		writeBodyError(w, err)
		return
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		body = []byte("{}")
	}
	if !json.Valid(body) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "request body is not valid JSON"})
		return
	}

	result, err := g.mcp.ExecuteTool(r.Context(), vars["worker"]+"_"+vars["tool"], body)
	if err != nil {
		g.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(result)
}

// decodeBody reads a size-limited JSON body into v, answering 413 for an
// oversized body and 400 for anything else.
func (g *gateway) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	body := http.MaxBytesReader(w, r.Body, g.config.Snapshot().Server.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		writeBodyError(w, err)
		return false
	}
	return true
}

func writeBodyError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{
			"error": fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
		})
		return
	}
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
}

// limit reads ?limit=, defaulting to history.list_limit.
func (g *gateway) limit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return g.config.Snapshot().History.ListLimit, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be a non-negative integer"})
		return 0, false
	}
	return n, true
}

func (g *gateway) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, workers.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, history.ErrNotFound), errors.Is(err, workers.ErrUnknownTool),
		errors.Is(err, documents.ErrNotFound):
		status = http.StatusNotFound
	default:
		g.log.WithError(err).Error("request failed")
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
