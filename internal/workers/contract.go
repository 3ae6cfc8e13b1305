package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ericksa/contractlens/internal/analysis"
	"github.com/ericksa/contractlens/internal/audit"
	"github.com/ericksa/contractlens/internal/history"
	"github.com/ericksa/contractlens/internal/report"
	"github.com/sirupsen/logrus"
)

// HistoryStore persists analyses. *history.Store satisfies it.
type HistoryStore interface {
	Save(ctx context.Context, a analysis.ContractAnalysis) error
	Get(ctx context.Context, id string) (analysis.ContractAnalysis, error)
	List(ctx context.Context, limit int) ([]history.Summary, error)
}

// ContractWorker exposes the analysis engine as tools
type ContractWorker struct {
	analyzer *analysis.Analyzer
	store    HistoryStore
	auditor  Auditor
	log      *logrus.Entry
}

func NewContractWorker(analyzer *analysis.Analyzer, store HistoryStore, auditor Auditor, log *logrus.Entry) *ContractWorker {
	if analyzer == nil {
		analyzer = analysis.NewAnalyzer()
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &ContractWorker{analyzer: analyzer, store: store, auditor: auditor, log: log}
}

func (w *ContractWorker) Name() string { return "contract" }

func (w *ContractWorker) GetTools() []ToolDef {
	return []ToolDef{
		{Name: "analyze", Description: "Analyze contract text: clauses, risk, entities, compliance and ambiguities"},
		{Name: "translate", Description: "Replace Hindi (Devanagari) passages with translation markers"},
		{Name: "get", Description: "Get a saved analysis by ID"},
		{Name: "list", Description: "List saved analyses, newest first"},
		{Name: "clause_find", Description: "Find clauses of a saved analysis by type or risk level"},
		{Name: "risk_score", Description: "Summarize the risk profile of a saved analysis"},
		{Name: "report", Description: "Render a saved analysis as markdown, html, json or text"},
	}
}

func (w *ContractWorker) Execute(ctx context.Context, name string, input json.RawMessage) ([]byte, error) {
	switch toolName(w.Name(), name) {
	case "analyze":
		return w.analyzeTool(ctx, input)
	case "translate":
		return w.translateTool(ctx, input)
	case "get":
		return w.get(ctx, input)
	case "list":
		return w.list(ctx, input)
	case "clause_find":
		return w.findClause(ctx, input)
	case "risk_score":
		return w.riskScore(ctx, input)
	case "report":
		return w.reportTool(ctx, input)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
}

// Analyze runs the engine, saves the result when a store is configured and
// records ANALYSIS_COMPLETED. Blank text is rejected before the engine runs.
func (w *ContractWorker) Analyze(ctx context.Context, text, fileName string) (analysis.ContractAnalysis, error) {
	if strings.TrimSpace(text) == "" {
		return analysis.ContractAnalysis{}, fmt.Errorf("%w: contract text is empty", ErrInvalidInput)
	}
	if fileName == "" {
		fileName = "untitled.txt"
	}
	a := w.analyzer.Analyze(text, fileName)
	if w.store != nil {
		if err := w.store.Save(ctx, a); err != nil {
			return analysis.ContractAnalysis{}, err
		}
	}
	w.audit(ctx, audit.ActionAnalysisCompleted, a.ID, fileName)
	w.log.WithFields(logrus.Fields{
		"id":            a.ID,
		"contract_type": a.ContractType,
		"risk_score":    a.OverallRiskScore,
		"clauses":       len(a.Clauses),
	}).Info("contract analyzed")
	return a, nil
}

func (w *ContractWorker) Translate(ctx context.Context, text string) string {
	out := analysis.TranslateHindi(text)
	w.audit(ctx, audit.ActionTranslation, "", fmt.Sprintf("%d characters", utf8.RuneCountInString(text)))
	return out
}

// Get loads a saved analysis. It returns history.ErrNotFound (wrapped) for
// unknown ids and when no store is configured.
func (w *ContractWorker) Get(ctx context.Context, id string) (analysis.ContractAnalysis, error) {
	if id == "" {
		return analysis.ContractAnalysis{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if w.store == nil {
		return analysis.ContractAnalysis{}, fmt.Errorf("%w: %s", history.ErrNotFound, id)
	}
	a, err := w.store.Get(ctx, id)
	if err != nil {
		return analysis.ContractAnalysis{}, fmt.Errorf("%w: %s", err, id)
	}
	return a, nil
}

func (w *ContractWorker) List(ctx context.Context, limit int) ([]history.Summary, error) {
	if w.store == nil {
		return []history.Summary{}, nil
	}
	return w.store.List(ctx, limit)
}

// Report renders a saved analysis and records REPORT_EXPORTED.
func (w *ContractWorker) Report(ctx context.Context, id string, f report.Format) ([]byte, string, error) {
	a, err := w.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	body, contentType, err := report.Render(a, f)
	if err != nil {
		return nil, "", err
	}
	w.audit(ctx, audit.ActionReportExported, id, string(f))
	return body, contentType, nil
}

func (w *ContractWorker) analyzeTool(ctx context.Context, input json.RawMessage) ([]byte, error) {
	var req struct {
		Text     string `json:"text"`
		FileName string `json:"file_name"`
	}
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	a, err := w.Analyze(ctx, req.Text, req.FileName)
	if err != nil {
		return nil, err
	}
	return json.Marshal(a)
}

func (w *ContractWorker) translateTool(ctx context.Context, input json.RawMessage) ([]byte, error) {
	var req struct {
		Text string `json:"text"`
	}
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	return json.Marshal(map[string]string{"text": w.Translate(ctx, req.Text)})
}

func (w *ContractWorker) get(ctx context.Context, input json.RawMessage) ([]byte, error) {
	var req struct {
		ID string `json:"id"`
	}
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	a, err := w.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return json.Marshal(a)
}

func (w *ContractWorker) list(ctx context.Context, input json.RawMessage) ([]byte, error) {
	var req struct {
		Limit int `json:"limit"`
	}
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	if req.Limit == 0 {
		req.Limit = 50
	}
	rows, err := w.List(ctx, req.Limit)
	if err != nil {
		return nil, err
	}
	return json.Marshal(rows)
}

// findClause filters the clauses of a saved analysis. Both filters are
// optional; with neither every clause is returned.
func (w *ContractWorker) findClause(ctx context.Context, input json.RawMessage) ([]byte, error) {
	var req struct {
		ID          string   `json:"id"`
		ClauseTypes []string `json:"clause_types"`
		RiskLevel   string   `json:"risk_level"`
	}
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	a, err := w.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	types := make(map[analysis.ClauseType]bool, len(req.ClauseTypes))
	for _, t := range req.ClauseTypes {
		types[analysis.ClauseType(strings.ToLower(strings.TrimSpace(t)))] = true
	}
	level := analysis.RiskLevel(strings.ToLower(req.RiskLevel))

	results := []analysis.Clause{}
	for _, c := range a.Clauses {
		if len(types) > 0 && !types[c.Type] {
			continue
		}
		if level != "" && c.RiskLevel != level {
			continue
		}
		results = append(results, c)
	}
	return json.Marshal(results)
}

func (w *ContractWorker) riskScore(ctx context.Context, input json.RawMessage) ([]byte, error) {
	var req struct {
		ID string `json:"id"`
	}
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	a, err := w.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	counts := map[analysis.RiskLevel]int{analysis.RiskHigh: 0, analysis.RiskMedium: 0, analysis.RiskLow: 0}
	unfavorable := []string{}
	for _, c := range a.Clauses {
		counts[c.RiskLevel]++
		if c.IsUnfavorable {
			unfavorable = append(unfavorable, c.Title)
		}
	}

	return json.Marshal(map[string]any{
		"id":                  a.ID,
		"score":               a.OverallRiskScore,
		"risk_level":          a.OverallRiskLevel,
		"risk_counts":         counts,
		"unfavorable_clauses": unfavorable,
		"recommendations":     a.Recommendations,
	})
}

func (w *ContractWorker) reportTool(ctx context.Context, input json.RawMessage) ([]byte, error) {
	var req struct {
		ID     string `json:"id"`
		Format string `json:"format"`
	}
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	if req.Format == "" {
		req.Format = string(report.FormatMarkdown)
	}
	f, err := report.ParseFormat(req.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	body, contentType, err := w.Report(ctx, req.ID, f)
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]string{
		"format":       string(f),
		"content_type": contentType,
		"body":         string(body),
	})
}

// audit logs write failures instead of returning them.
func (w *ContractWorker) audit(ctx context.Context, action, contractID, details string) {
	if w.auditor == nil {
		return
	}
	if err := w.auditor.Log(ctx, action, contractID, details); err != nil {
		w.log.WithError(err).WithField("action", action).Warn("audit log write failed")
	}
}
