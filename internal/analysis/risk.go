package analysis

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	baseRiskScore = 25

	highPhraseWeight   = 15
	mediumPhraseWeight = 8
	lowPhraseWeight    = -5

	clauseHighThreshold    = 65
	clauseMediumThreshold  = 35
	overallHighThreshold   = 60
	overallMediumThreshold = 35
	unfavorableThreshold   = 60
)

var highRiskPhrases = []string{
	"unlimited liability",
	"waive all rights",
	"sole discretion",
	"without notice",
	"irrevocable",
	"perpetual",
	"exclusive jurisdiction",
	"personal guarantee",
	"automatic renewal",
	"unilateral termination",
	"non-refundable",
	"entire risk",
}

var mediumRiskPhrases = []string{
	"reasonable efforts",
	"material breach",
	"prior written consent",
	"commercially reasonable",
	"may terminate",
	"subject to change",
	"at its option",
	"binding arbitration",
}

var lowRiskPhrases = []string{
	"mutual agreement",
	"good faith",
	"proportionate",
	"reasonable notice",
	"pro-rata",
	"negotiated",
	"limited to",
}

type structuralCheck struct {
	Pattern *regexp.Regexp
	Weight  int
	Concern string
}

var structuralChecks = []structuralCheck{
	{regexp.MustCompile(`(?i)shall not|must not|prohibited|forbidden`), 10, "Contains prohibitions that may restrict your operations"},
	{regexp.MustCompile(`(?i)exclusive|sole|only`), 12, "Contains exclusivity requirements"},
	{regexp.MustCompile(`(?i)perpetual|forever|unlimited|indefinite`), 15, "Contains indefinite or perpetual terms"},
	{regexp.MustCompile(`(?i)waive|forfeit|surrender|relinquish`), 18, "May require waiver of important rights"},
}

// ScoreRisk returns the clause risk score in [0,100] and the concerns that
// raised it. Each phrase counts once however often it repeats.
func ScoreRisk(content string) (int, []string) {
	lower := strings.ToLower(content)
	score := baseRiskScore
	concerns := []string{}

	for _, phrase := range highRiskPhrases {
		if strings.Contains(lower, phrase) {
			score += highPhraseWeight
			concerns = append(concerns, fmt.Sprintf("Contains high-risk term: %q", phrase))
		}
	}
	for _, phrase := range mediumRiskPhrases {
		if strings.Contains(lower, phrase) {
			score += mediumPhraseWeight
		}
	}
	for _, phrase := range lowRiskPhrases {
		if strings.Contains(lower, phrase) {
			score += lowPhraseWeight
		}
	}
	for _, c := range structuralChecks {
		if c.Pattern.MatchString(content) {
			score += c.Weight
			concerns = append(concerns, c.Concern)
		}
	}
	return clamp(score, 0, 100), concerns
}

// ClauseRiskLevel buckets a clause score: above 65 is high, above 35 medium.
func ClauseRiskLevel(score int) RiskLevel {
	switch {
	case score > clauseHighThreshold:
		return RiskHigh
	case score > clauseMediumThreshold:
		return RiskMedium
	default:
		return RiskLow
	}
}

// OverallRiskLevel buckets a document score: above 60 is high, above 35 medium.
func OverallRiskLevel(score int) RiskLevel {
	switch {
	case score > overallHighThreshold:
		return RiskHigh
	case score > overallMediumThreshold:
		return RiskMedium
	default:
		return RiskLow
	}
}

func IsUnfavorable(score int) bool {
	return score > unfavorableThreshold
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
