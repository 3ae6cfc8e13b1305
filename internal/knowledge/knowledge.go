// Package knowledge serves the built-in reference material: common contract
// issues per contract type, the statutes SMEs most often run into, and
// negotiation tips keyed by clause type.
package knowledge

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"github.com/ericksa/contractlens/internal/analysis"
	"gopkg.in/yaml.v3"
)

//go:embed knowledge.yaml
var embedded []byte

type Issue struct {
	Title          string `yaml:"title" json:"title"`
	Description    string `yaml:"description" json:"description"`
	Recommendation string `yaml:"recommendation" json:"recommendation"`
}

type IssueCategory struct {
	ContractType analysis.ContractType `yaml:"contract_type" json:"contract_type"`
	Category     string                `yaml:"category" json:"category"`
	Issues       []Issue               `yaml:"issues" json:"issues"`
}

type Statute struct {
	Title      string   `yaml:"title" json:"title"`
	Note       string   `yaml:"note,omitempty" json:"note,omitempty"`
	Provisions []string `yaml:"provisions" json:"provisions"`
}

// TipSet is a negotiation scenario and the clause types it applies to.
type TipSet struct {
	Scenario    string                `yaml:"scenario" json:"scenario"`
	ClauseTypes []analysis.ClauseType `yaml:"clause_types" json:"clause_types"`
	Tips        []string              `yaml:"tips" json:"tips"`
}

type document struct {
	Issues   []IssueCategory `yaml:"issues"`
	Statutes []Statute       `yaml:"statutes"`
	Tips     []TipSet        `yaml:"negotiation_tips"`
}

// Base is the parsed knowledge base. It is read-only after Load.
type Base struct {
	doc document
}

// Load parses the embedded knowledge base.
func Load() (*Base, error) {
	return Parse(embedded)
}

// Parse decodes and validates a knowledge base document. Unknown fields are
// rejected.
func Parse(data []byte) (*Base, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse knowledge base: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &Base{doc: doc}, nil
}

func (d document) validate() error {
	if len(d.Issues) == 0 {
		return errors.New("knowledge base has no issue categories")
	}
	for _, c := range d.Issues {
		if !knownContractType(c.ContractType) {
			return fmt.Errorf("issue category %q: unknown contract type %q", c.Category, c.ContractType)
		}
	}
	for _, ts := range d.Tips {
		if len(ts.ClauseTypes) == 0 {
			return fmt.Errorf("tip set %q lists no clause types", ts.Scenario)
		}
		for _, ct := range ts.ClauseTypes {
			if !knownClauseType(ct) {
				return fmt.Errorf("tip set %q: unknown clause type %q", ts.Scenario, ct)
			}
		}
	}
	return nil
}

// Categories returns every issue category in document order.
func (b *Base) Categories() []IssueCategory {
	return append([]IssueCategory(nil), b.doc.Issues...)
}

// IssuesFor returns the common issues recorded for a contract type, or nil.
func (b *Base) IssuesFor(t analysis.ContractType) []Issue {
	for _, c := range b.doc.Issues {
		if c.ContractType == t {
			return append([]Issue(nil), c.Issues...)
		}
	}
	return nil
}

// TipsFor returns the negotiation scenarios that cover clause type t.
func (b *Base) TipsFor(t analysis.ClauseType) []TipSet {
	var out []TipSet
	for _, ts := range b.doc.Tips {
		for _, ct := range ts.ClauseTypes {
			if ct == t {
				out = append(out, ts)
				break
			}
		}
	}
	return out
}

// TipsForAnalysis collects the scenarios relevant to any clause in a, each
// once, in knowledge base order.
func (b *Base) TipsForAnalysis(a analysis.ContractAnalysis) []TipSet {
	present := make(map[analysis.ClauseType]bool, len(a.Clauses))
	for _, c := range a.Clauses {
		present[c.Type] = true
	}
	var out []TipSet
	for _, ts := range b.doc.Tips {
		for _, ct := range ts.ClauseTypes {
			if present[ct] {
				out = append(out, ts)
				break
			}
		}
	}
	return out
}

func (b *Base) Statutes() []Statute {
	return append([]Statute(nil), b.doc.Statutes...)
}

func knownContractType(t analysis.ContractType) bool {
	for _, ct := range analysis.ContractTypes {
		if ct == t {
			return true
		}
	}
	return false
}

func knownClauseType(t analysis.ClauseType) bool {
	for _, ct := range analysis.ClauseTypes() {
		if ct == t {
			return true
		}
	}
	return false
}
