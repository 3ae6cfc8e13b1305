package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scored(title string, score int, t ClauseType, cat Category) Clause {
	return Clause{
		Title:         title,
		Type:          t,
		RiskScore:     score,
		RiskLevel:     ClauseRiskLevel(score),
		IsUnfavorable: IsUnfavorable(score),
		Category:      cat,
	}
}

func TestOverallRisk(t *testing.T) {
	tests := []struct {
		name      string
		clauses   []Clause
		wantScore int
		wantLevel RiskLevel
	}{
		{"no clauses", nil, 50, RiskMedium},
		{"weighted toward high", []Clause{scored("a", 70, ClauseGeneral, CategoryGeneral), scored("b", 30, ClauseGeneral, CategoryGeneral)}, 60, RiskMedium},
		{"rounds to nearest", []Clause{scored("a", 36, ClauseGeneral, CategoryGeneral), scored("b", 35, ClauseGeneral, CategoryGeneral)}, 36, RiskMedium},
		{"all high", []Clause{scored("a", 90, ClauseGeneral, CategoryGeneral), scored("b", 70, ClauseGeneral, CategoryGeneral)}, 80, RiskHigh},
		{"single low", []Clause{scored("a", 20, ClauseGeneral, CategoryGeneral)}, 20, RiskLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, level := OverallRisk(tt.clauses)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantLevel, level)
		})
	}
}

func TestSummarize(t *testing.T) {
	entities := []ExtractedEntity{
		{Type: EntityParty, Value: "Acme Pvt Ltd"},
		{Type: EntityAmount, Value: "Rs. 10,000"},
		{Type: EntityParty, Value: "Beta LLP"},
		{Type: EntityParty, Value: "Gamma Inc"},
		{Type: EntityDuration, Value: "12 months"},
	}
	clauses := []Clause{
		scored("a", 80, ClauseGeneral, CategoryGeneral),
		scored("b", 20, ClauseGeneral, CategoryGeneral),
	}

	assert.Equal(t,
		"This is a Service Agreement involving Acme Pvt Ltd and Beta LLP for a period of 12 months. "+
			"The contract involves financial terms including Rs. 10,000. "+
			"The document contains 2 key clauses, of which 1 require careful attention due to elevated risk levels.",
		Summarize(ContractService, clauses, entities))
}

func TestSummarize_Bare(t *testing.T) {
	assert.Equal(t,
		"This is a Employment Agreement. The document contains 0 key clauses, of which 0 require careful attention due to elevated risk levels.",
		Summarize(ContractEmployment, nil, nil))
	assert.Contains(t, Summarize(ContractUnknown, nil, nil), "This is a Contract.")
}

func TestKeyFindings_Order(t *testing.T) {
	clauses := []Clause{
		scored("Renewal", 70, ClauseAutoRenewal, CategoryObligation),
		scored("Restraint", 40, ClauseNonCompete, CategoryProhibition),
		scored("Fees", 30, ClausePayment, CategoryObligation),
	}
	entities := []ExtractedEntity{
		{Type: EntityJurisdiction, Value: "Pune"},
		{Type: EntityJurisdiction, Value: "Delhi"},
	}

	assert.Equal(t, []string{
		"1 high-risk clauses identified that require immediate attention",
		"1 potentially unfavorable terms detected",
		"2 binding obligations identified",
		"1 restrictions/prohibitions found",
		"Jurisdiction: Pune",
		"Contains auto-renewal provisions - mark renewal deadline",
		"Non-compete restrictions apply - review scope carefully",
	}, KeyFindings(clauses, entities))
}

func TestKeyFindings_UnfavorableWithoutHighRisk(t *testing.T) {
	findings := KeyFindings([]Clause{scored("Fees", 62, ClausePayment, CategoryGeneral)}, nil)
	assert.Equal(t, []string{"1 potentially unfavorable terms detected"}, findings)
}

func TestRecommendations(t *testing.T) {
	closing := []string{
		"Keep a signed copy for your records",
		"Set calendar reminders for key dates and deadlines",
	}
	assert.Equal(t, closing, Recommendations(nil))

	clauses := []Clause{
		scored("Liability", 90, ClauseLiability, CategoryGeneral),
		scored("Penalty", 80, ClausePenalty, CategoryGeneral),
		scored("Exclusivity", 70, ClauseGeneral, CategoryGeneral),
		scored("Indemnity", 30, ClauseIndemnity, CategoryGeneral),
		scored("Lock-in", 30, ClauseLockIn, CategoryGeneral),
	}
	assert.Equal(t, []string{
		"Consult with a legal professional before signing - multiple high-risk clauses detected",
		"Renegotiate the Liability clause to reduce risk exposure",
		"Renegotiate the Penalty clause to reduce risk exposure",
		"Request mutual indemnification and cap on liability amounts",
		"Negotiate exit provisions or shorter lock-in period",
		"Keep a signed copy for your records",
	}, Recommendations(clauses))
}
