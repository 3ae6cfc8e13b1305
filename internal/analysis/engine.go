// Package analysis is the contract analysis engine: language and type
// detection, clause segmentation, entity extraction, per-clause risk scoring
// and report synthesis. It performs no I/O and keeps no state between calls,
// so a single Analyzer may be shared by concurrent callers.
package analysis

import (
	"time"

	"github.com/google/uuid"
)

// Analyzer runs the analysis pipeline. The zero value is not usable; call
// NewAnalyzer.
type Analyzer struct {
	now   func() time.Time
	newID func() string
}

type Option func(*Analyzer)

// WithClock overrides the source of UploadedAt.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

// WithIDGenerator overrides the analysis id generator.
func WithIDGenerator(newID func() string) Option {
	return func(a *Analyzer) { a.newID = newID }
}

func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		now:   time.Now,
		newID: func() string { return "analysis-" + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var defaultAnalyzer = NewAnalyzer()

// Analyze runs the full pipeline with the default clock and id generator.
func Analyze(text, fileName string) ContractAnalysis {
	return defaultAnalyzer.Analyze(text, fileName)
}

// Analyze never fails: every stage degrades to a safe default, and an empty
// text yields empty collections with a neutral overall risk.
func (a *Analyzer) Analyze(text, fileName string) ContractAnalysis {
	contractType := ClassifyContractType(text)
	entities := ExtractEntities(text)

	segments := SegmentClauses(text)
	clauses := make([]Clause, 0, len(segments))
	for i, seg := range segments {
		clauses = append(clauses, BuildClause(i, seg))
	}
	score, level := OverallRisk(clauses)

	return ContractAnalysis{
		ID:               a.newID(),
		FileName:         fileName,
		ContractType:     contractType,
		Language:         DetectLanguage(text),
		UploadedAt:       a.now().UTC(),
		OverallRiskScore: score,
		OverallRiskLevel: level,
		Clauses:          clauses,
		Entities:         entities,
		Summary:          Summarize(contractType, clauses, entities),
		KeyFindings:      KeyFindings(clauses, entities),
		Recommendations:  Recommendations(clauses),
		ComplianceIssues: CheckCompliance(text, contractType),
		Ambiguities:      FindAmbiguities(clauses),
	}
}
