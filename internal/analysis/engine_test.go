package analysis

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const employmentContract = `EMPLOYMENT AGREEMENT

This Agreement is made on 1 April 2024 by and between Sharma Technologies Pvt Ltd
and Priya Verma.

1. Compensation
The Employer shall pay the Employee a salary of Rs. 75,000 per month, payable on the last working day.

2. Probation
The Employee shall serve a probation period of 6 months during which either party may terminate with reasonable notice.

3. Liability
The Employee accepts unlimited liability for any loss caused to the Employer, at the sole discretion of the Employer, without notice.

4. Non-Compete
The Employee shall not join a competitor for 2 years after leaving and must not solicit clients.

5. Governing Law
This Agreement is subject to the courts of Bengaluru.
`

var fixedTime = time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(
		WithClock(func() time.Time { return fixedTime }),
		WithIDGenerator(func() string { return "analysis-test" }),
	)
}

func TestAnalyze_EmploymentContract(t *testing.T) {
	a := newTestAnalyzer().Analyze(employmentContract, "offer.txt")

	assert.Equal(t, "analysis-test", a.ID)
	assert.Equal(t, "offer.txt", a.FileName)
	assert.Equal(t, fixedTime, a.UploadedAt)
	assert.Equal(t, ContractEmployment, a.ContractType)
	assert.Equal(t, LanguageEnglish, a.Language)

	require.Len(t, a.Clauses, 5)
	titles := make([]string, len(a.Clauses))
	for i, c := range a.Clauses {
		titles[i] = c.Title
		assert.Equal(t, fmt.Sprintf("clause-%d", i), c.ID)
	}
	assert.Equal(t, []string{"Compensation", "Probation", "Liability", "Non-Compete", "Governing Law"}, titles)

	types := []ClauseType{ClausePayment, ClauseTermination, ClauseLiability, ClauseNonCompete, ClauseJurisdiction}
	scores := []int{25, 28, 97, 35, 25}
	for i, c := range a.Clauses {
		assert.Equal(t, types[i], c.Type, c.Title)
		assert.Equal(t, scores[i], c.RiskScore, c.Title)
	}

	liability := a.Clauses[2]
	assert.Contains(t, liability.Concerns, `Contains high-risk term: "unlimited liability"`)
	assert.Equal(t, RiskHigh, liability.RiskLevel)
	assert.True(t, liability.IsUnfavorable)

	assert.Equal(t, 58, a.OverallRiskScore)
	assert.Equal(t, RiskMedium, a.OverallRiskLevel)

	assert.Equal(t, []string{"Sharma Technologies Pvt Ltd"}, a.EntitiesOf(EntityParty))
	assert.Equal(t, []string{"1 April 2024"}, a.EntitiesOf(EntityDate))
	assert.Equal(t, []string{"Rs. 75,000"}, a.EntitiesOf(EntityAmount))
	assert.Equal(t, []string{"6 months", "2 years"}, a.EntitiesOf(EntityDuration))
	assert.Equal(t, []string{"Bengaluru"}, a.EntitiesOf(EntityJurisdiction))

	assert.Equal(t,
		"This is a Employment Agreement involving Sharma Technologies Pvt Ltd for a period of 6 months. "+
			"The contract involves financial terms including Rs. 75,000. "+
			"The document contains 5 key clauses, of which 1 require careful attention due to elevated risk levels.",
		a.Summary)

	assert.Equal(t, []string{
		"1 high-risk clauses identified that require immediate attention",
		"1 potentially unfavorable terms detected",
		"2 binding obligations identified",
		"1 restrictions/prohibitions found",
		"Jurisdiction: Bengaluru",
		"Non-compete restrictions apply - review scope carefully",
	}, a.KeyFindings)

	assert.Equal(t, []string{
		"Consult with a legal professional before signing - multiple high-risk clauses detected",
		"Renegotiate the Liability clause to reduce risk exposure",
		"Keep a signed copy for your records",
		"Set calendar reminders for key dates and deadlines",
	}, a.Recommendations)

	assert.Contains(t, a.ComplianceIssues, "Employment contract should specify notice period as per Indian labor laws")
	assert.Contains(t, a.ComplianceIssues, "Consider including PF and Gratuity provisions as required under Indian law")
	assert.Contains(t, a.ComplianceIssues, "Note: Non-compete clauses may have limited enforceability under Indian Contract Act")

	assert.Equal(t, []string{
		`"Probation" uses subjective terms like "reasonable" without clear definition`,
		`"Probation" mixes mandatory and permissive language - clarify obligations`,
	}, a.Ambiguities)
}

func TestAnalyze_ClauseBounds(t *testing.T) {
	a := Analyze(employmentContract+"\n6. Exclusivity\nThe Employee irrevocably and perpetually assigns all rights and shall not waive them.\n", "x.txt")

	require.NotEmpty(t, a.Clauses)
	for _, c := range a.Clauses {
		assert.Equal(t, c.RiskScore > 60, c.IsUnfavorable, c.Title)
		assert.Equal(t, ClauseRiskLevel(c.RiskScore), c.RiskLevel, c.Title)
		assert.LessOrEqual(t, len(c.Suggestions), 4, c.Title)
		assert.GreaterOrEqual(t, c.RiskScore, 0)
		assert.LessOrEqual(t, c.RiskScore, 100)
	}
	assert.LessOrEqual(t, len(a.Recommendations), 6)
	assert.LessOrEqual(t, len(a.Ambiguities), 5)
	assert.True(t, strings.HasPrefix(a.ID, "analysis-"))
}

func TestAnalyze_Idempotent(t *testing.T) {
	analyzer := newTestAnalyzer()
	assert.Equal(t, analyzer.Analyze(employmentContract, "a.txt"), analyzer.Analyze(employmentContract, "a.txt"))

	first := Analyze(employmentContract, "a.txt")
	second := Analyze(employmentContract, "a.txt")
	assert.NotEqual(t, first.ID, second.ID)
	first.ID, first.UploadedAt = "", time.Time{}
	second.ID, second.UploadedAt = "", time.Time{}
	assert.Equal(t, first, second)
}

func TestAnalyze_EmptyText(t *testing.T) {
	a := newTestAnalyzer().Analyze("", "empty.txt")

	assert.Equal(t, ContractUnknown, a.ContractType)
	assert.Equal(t, LanguageEnglish, a.Language)
	assert.Equal(t, 50, a.OverallRiskScore)
	assert.Equal(t, RiskMedium, a.OverallRiskLevel)
	assert.Empty(t, a.Clauses)
	assert.Empty(t, a.Entities)
	assert.Empty(t, a.KeyFindings)
	assert.Empty(t, a.ComplianceIssues)
	assert.Empty(t, a.Ambiguities)
	assert.Len(t, a.Recommendations, 2)
	assert.Equal(t,
		"This is a Contract. The document contains 0 key clauses, of which 0 require careful attention due to elevated risk levels.",
		a.Summary)

	raw, err := json.Marshal(a)
	require.NoError(t, err)
	for _, field := range []string{"clauses", "entities", "key_findings", "compliance_issues", "ambiguities"} {
		assert.Contains(t, string(raw), `"`+field+`":[]`)
	}
}

func TestAnalyze_ParagraphFallback(t *testing.T) {
	text := "The parties agree to cooperate on the marketing of the new product line.\n\n" +
		"Either party may terminate this arrangement by giving reasonable notice in writing."

	a := Analyze(text, "memo.txt")

	require.Len(t, a.Clauses, 2)
	assert.Equal(t, "Section 1", a.Clauses[0].Title)
	assert.Equal(t, "Section 2", a.Clauses[1].Title)
	assert.Equal(t, ClauseTermination, a.Clauses[1].Type)
}

func TestAnalyze_HindiDocument(t *testing.T) {
	text := "1. भुगतान की शर्तें\nकिरायेदार हर महीने की पाँच तारीख तक किराया देगा।\n"

	a := Analyze(text, "hindi.txt")

	assert.Equal(t, LanguageHindi, a.Language)
	require.Len(t, a.Clauses, 1)
	assert.Equal(t, "भुगतान की शर्तें", a.Clauses[0].Title)
	assert.Equal(t, ClauseGeneral, a.Clauses[0].Type)
}
