package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ericksa/contractlens/internal/documents"
)

// SearchMatch is one matching line from Search.
type SearchMatch struct {
	File  string `json:"file"`
	Line  int    `json:"line"`
	Match string `json:"match"`
}

// DocumentWorker reads contracts from a documents.Source and hands them to
// the contract worker for analysis.
type DocumentWorker struct {
	source    documents.Source
	contracts *ContractWorker
}

func NewDocumentWorker(source documents.Source, contracts *ContractWorker) *DocumentWorker {
	if contracts == nil {
		contracts = NewContractWorker(nil, nil, nil, nil)
	}
	return &DocumentWorker{source: source, contracts: contracts}
}

func (w *DocumentWorker) Name() string { return "documents" }

func (w *DocumentWorker) GetTools() []ToolDef {
	return []ToolDef{
		{Name: "list", Description: "List contract files in the documents store"},
		{Name: "read", Description: "Read a contract file as plain text (HTML is reduced to its text)"},
		{Name: "search", Description: "Find lines containing a phrase across contract files"},
		{Name: "analyze", Description: "Analyze a contract file from the documents store"},
	}
}

func (w *DocumentWorker) Execute(ctx context.Context, name string, input json.RawMessage) ([]byte, error) {
	var req struct {
		Name  string `json:"name"`
		Query string `json:"query"`
	}
	if err := decode(input, &req); err != nil {
		return nil, err
	}

	switch toolName(w.Name(), name) {
	case "list":
		docs, err := w.source.List(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(docs)
	case "read":
		text, err := w.Read(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		return json.Marshal(map[string]string{"name": req.Name, "text": text})
	case "search":
		matches, err := w.Search(ctx, req.Query)
		if err != nil {
			return nil, err
		}
		return json.Marshal(matches)
	case "analyze":
		text, err := w.Read(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		a, err := w.contracts.Analyze(ctx, text, req.Name)
		if err != nil {
			return nil, err
		}
		return json.Marshal(a)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
}

// Read returns the text of one document. Bad names and oversized files are
// reported as ErrInvalidInput.
func (w *DocumentWorker) Read(ctx context.Context, name string) (string, error) {
	text, err := documents.ReadText(ctx, w.source, name)
	if errors.Is(err, documents.ErrInvalidName) || errors.Is(err, documents.ErrTooLarge) {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return text, err
}

// Search matches query case-insensitively, line by line. Unreadable
// documents are skipped.
func (w *DocumentWorker) Search(ctx context.Context, query string) ([]SearchMatch, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidInput)
	}
	docs, err := w.source.List(ctx)
	if err != nil {
		return nil, err
	}
	matches := []SearchMatch{}
	for _, d := range docs {
		text, err := w.Read(ctx, d.Name)
		if err != nil {
			continue
		}
		for i, line := range strings.Split(text, "\n") {
			if strings.Contains(strings.ToLower(line), query) {
				matches = append(matches, SearchMatch{File: d.Name, Line: i + 1, Match: strings.TrimSpace(line)})
			}
		}
	}
	return matches, nil
}
