package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ericksa/contractlens/internal/analysis"
	"github.com/ericksa/contractlens/internal/knowledge"
)

// KnowledgeWorker serves the Indian-SME knowledge base
type KnowledgeWorker struct {
	base *knowledge.Base
}

func NewKnowledgeWorker(base *knowledge.Base) *KnowledgeWorker {
	return &KnowledgeWorker{base: base}
}

func (w *KnowledgeWorker) Name() string { return "knowledge" }

func (w *KnowledgeWorker) GetTools() []ToolDef {
	return []ToolDef{
		{Name: "issues", Description: "Common issues for a contract type (employment, vendor, lease, partnership, service, nda)"},
		{Name: "tips", Description: "Negotiation tips for a clause type"},
		{Name: "statutes", Description: "Indian statutes relevant to SME contracts"},
	}
}

func (w *KnowledgeWorker) Execute(ctx context.Context, name string, input json.RawMessage) ([]byte, error) {
	switch toolName(w.Name(), name) {
	case "issues":
		return w.issues(input)
	case "tips":
		return w.tips(input)
	case "statutes":
		return json.Marshal(w.base.Statutes())
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
}

// Issues returns the common issues of a contract type, or an empty slice.
func (w *KnowledgeWorker) Issues(t analysis.ContractType) []knowledge.Issue {
	issues := w.base.IssuesFor(t)
	if issues == nil {
		return []knowledge.Issue{}
	}
	return issues
}

func (w *KnowledgeWorker) issues(input json.RawMessage) ([]byte, error) {
	var req struct {
		ContractType string `json:"contract_type"`
	}
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	t, err := ParseContractType(req.ContractType)
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]any{
		"contract_type": t,
		"display_name":  t.DisplayName(),
		"issues":        w.Issues(t),
	})
}

func (w *KnowledgeWorker) tips(input json.RawMessage) ([]byte, error) {
	var req struct {
		ClauseType string `json:"clause_type"`
	}
	if err := decode(input, &req); err != nil {
		return nil, err
	}
	ct := analysis.ClauseType(strings.ToLower(strings.TrimSpace(req.ClauseType)))
	if ct == "" {
		return nil, fmt.Errorf("%w: clause_type is required", ErrInvalidInput)
	}
	known := false
	for _, t := range analysis.ClauseTypes() {
		known = known || t == ct
	}
	if !known {
		return nil, fmt.Errorf("%w: unknown clause type %q", ErrInvalidInput, req.ClauseType)
	}
	tips := w.base.TipsFor(ct)
	if tips == nil {
		tips = []knowledge.TipSet{}
	}
	return json.Marshal(tips)
}

// ParseContractType accepts a contract type name in any case.
func ParseContractType(s string) (analysis.ContractType, error) {
	t := analysis.ContractType(strings.ToLower(strings.TrimSpace(s)))
	for _, ct := range analysis.ContractTypes {
		if ct == t {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown contract type %q", ErrInvalidInput, s)
}
