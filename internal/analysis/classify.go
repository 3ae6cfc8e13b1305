package analysis

import (
	"regexp"
	"strings"
)

type contractTypeRule struct {
	Type    ContractType
	Pattern *regexp.Regexp
}

// contractTypeRules are evaluated in order; the first match wins.
var contractTypeRules = []contractTypeRule{
	{ContractEmployment, regexp.MustCompile(`employment|employee|employer|salary|designation|probation`)},
	{ContractVendor, regexp.MustCompile(`vendor|supplier|purchase order|supply agreement`)},
	{ContractLease, regexp.MustCompile(`lease|rent|landlord|tenant|premises|property`)},
	{ContractPartnership, regexp.MustCompile(`partnership|partner|profit sharing|capital contribution`)},
	{ContractService, regexp.MustCompile(`service|consultant|consulting|deliverable|scope of work`)},
	{ContractNDA, regexp.MustCompile(`non-disclosure|nda|confidential information|proprietary`)},
}

type categoryRule struct {
	Category Category
	Pattern  *regexp.Regexp
}

var categoryRules = []categoryRule{
	{CategoryProhibition, regexp.MustCompile(`shall not|must not|may not|prohibited|forbidden|restricted`)},
	{CategoryObligation, regexp.MustCompile(`shall|must|required|obligated|responsible for`)},
	{CategoryRight, regexp.MustCompile(`entitled|may|right to|option to|privilege`)},
}

// ClassifyContractType returns the first contract type whose vocabulary
// appears in text, or ContractUnknown.
func ClassifyContractType(text string) ContractType {
	lower := strings.ToLower(text)
	for _, r := range contractTypeRules {
		if r.Pattern.MatchString(lower) {
			return r.Type
		}
	}
	return ContractUnknown
}

// ClassifyClause tags a clause from its title and content together.
func ClassifyClause(title, content string) ClauseType {
	combined := title + " " + content
	for _, p := range clauseProfiles {
		for _, re := range p.Patterns {
			if re.MatchString(combined) {
				return p.Type
			}
		}
	}
	return ClauseGeneral
}

// Categorize reports whether content reads as a prohibition, an obligation or
// a right. Prohibition wins over obligation since "shall not" contains "shall".
func Categorize(content string) Category {
	lower := strings.ToLower(content)
	for _, r := range categoryRules {
		if r.Pattern.MatchString(lower) {
			return r.Category
		}
	}
	return CategoryGeneral
}
