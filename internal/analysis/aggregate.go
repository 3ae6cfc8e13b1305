package analysis

import (
	"fmt"
	"math"
	"strings"
)

const (
	maxRecommendations   = 6
	maxRenegotiations    = 2
	undeterminedRisk     = 50
	summaryPartiesListed = 2
)

var riskWeights = map[RiskLevel]int{
	RiskHigh:   3,
	RiskMedium: 2,
	RiskLow:    1,
}

// OverallRisk is the risk-weighted mean of the clause scores. With no clauses
// the document is reported as undetermined: 50, medium.
func OverallRisk(clauses []Clause) (int, RiskLevel) {
	if len(clauses) == 0 {
		return undeterminedRisk, RiskMedium
	}
	var sum, total int
	for _, c := range clauses {
		w := riskWeights[c.RiskLevel]
		if w == 0 {
			w = riskWeights[ClauseRiskLevel(c.RiskScore)]
		}
		sum += c.RiskScore * w
		total += w
	}
	score := int(math.Round(float64(sum) / float64(total)))
	return score, OverallRiskLevel(score)
}

// Summarize builds the one-paragraph overview shown above the findings.
func Summarize(t ContractType, clauses []Clause, entities []ExtractedEntity) string {
	var b strings.Builder
	name := t.DisplayName()
	fmt.Fprintf(&b, "This is a %s", name)

	if parties := entityValues(entities, EntityParty); len(parties) > 0 {
		if len(parties) > summaryPartiesListed {
			parties = parties[:summaryPartiesListed]
		}
		fmt.Fprintf(&b, " involving %s", strings.Join(parties, " and "))
	}
	if durations := entityValues(entities, EntityDuration); len(durations) > 0 {
		fmt.Fprintf(&b, " for a period of %s", durations[0])
	}
	if amounts := entityValues(entities, EntityAmount); len(amounts) > 0 {
		fmt.Fprintf(&b, ". The contract involves financial terms including %s", amounts[0])
	}

	high := len(filterClauses(clauses, func(c Clause) bool { return c.RiskLevel == RiskHigh }))
	fmt.Fprintf(&b, ". The document contains %d key clauses, of which %d require careful attention due to elevated risk levels.",
		len(clauses), high)
	return b.String()
}

// KeyFindings applies the finding rules in fixed order; each contributes at
// most one line.
func KeyFindings(clauses []Clause, entities []ExtractedEntity) []string {
	findings := []string{}
	count := func(keep func(Clause) bool) int { return len(filterClauses(clauses, keep)) }

	if n := count(func(c Clause) bool { return c.RiskLevel == RiskHigh }); n > 0 {
		findings = append(findings, fmt.Sprintf("%d high-risk clauses identified that require immediate attention", n))
	}
	if n := count(func(c Clause) bool { return c.IsUnfavorable }); n > 0 {
		findings = append(findings, fmt.Sprintf("%d potentially unfavorable terms detected", n))
	}
	if n := count(func(c Clause) bool { return c.Category == CategoryObligation }); n > 0 {
		findings = append(findings, fmt.Sprintf("%d binding obligations identified", n))
	}
	if n := count(func(c Clause) bool { return c.Category == CategoryProhibition }); n > 0 {
		findings = append(findings, fmt.Sprintf("%d restrictions/prohibitions found", n))
	}
	if js := entityValues(entities, EntityJurisdiction); len(js) > 0 {
		findings = append(findings, "Jurisdiction: "+js[0])
	}
	if hasClauseType(clauses, ClauseAutoRenewal) {
		findings = append(findings, "Contains auto-renewal provisions - mark renewal deadline")
	}
	if hasClauseType(clauses, ClauseNonCompete) {
		findings = append(findings, "Non-compete restrictions apply - review scope carefully")
	}
	return findings
}

// Recommendations lists next steps, at most six.
func Recommendations(clauses []Clause) []string {
	recs := []string{}
	high := filterClauses(clauses, func(c Clause) bool { return c.RiskLevel == RiskHigh })
	if len(high) > 0 {
		recs = append(recs, "Consult with a legal professional before signing - multiple high-risk clauses detected")
		for i, c := range high {
			if i == maxRenegotiations {
				break
			}
			recs = append(recs, fmt.Sprintf("Renegotiate the %s clause to reduce risk exposure", c.Title))
		}
	}
	if hasClauseType(clauses, ClauseIndemnity) {
		recs = append(recs, "Request mutual indemnification and cap on liability amounts")
	}
	if hasClauseType(clauses, ClauseLockIn) {
		recs = append(recs, "Negotiate exit provisions or shorter lock-in period")
	}
	recs = append(recs,
		"Keep a signed copy for your records",
		"Set calendar reminders for key dates and deadlines",
	)
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

func hasClauseType(clauses []Clause, t ClauseType) bool {
	for _, c := range clauses {
		if c.Type == t {
			return true
		}
	}
	return false
}
