package analysis

import (
	"fmt"
	"regexp"
)

const maxAmbiguities = 5

// textRule fires when every Require pattern matches and Exclude does not.
type textRule struct {
	Require []*regexp.Regexp
	Exclude *regexp.Regexp
}

func (r textRule) matches(text string) bool {
	for _, re := range r.Require {
		if !re.MatchString(text) {
			return false
		}
	}
	return r.Exclude == nil || !r.Exclude.MatchString(text)
}

type complianceRule struct {
	textRule
	// Types limits the rule to these contract types; empty means every type.
	Types []ContractType
	Issue string
}

func (r complianceRule) appliesTo(t ContractType) bool {
	if len(r.Types) == 0 {
		return true
	}
	for _, rt := range r.Types {
		if rt == t {
			return true
		}
	}
	return false
}

func ci(expr string) *regexp.Regexp { return regexp.MustCompile(`(?i)` + expr) }

func only(types ...ContractType) []ContractType { return types }

var complianceRules = []complianceRule{
	{
		Types:    only(ContractEmployment),
		textRule: textRule{Exclude: ci(`notice period|termination notice`)},
		Issue:    "Employment contract should specify notice period as per Indian labor laws",
	},
	{
		Types:    only(ContractEmployment),
		textRule: textRule{Require: []*regexp.Regexp{ci(`salary|compensation`)}, Exclude: ci(`provident fund|pf|gratuity`)},
		Issue:    "Consider including PF and Gratuity provisions as required under Indian law",
	},
	{
		Types:    only(ContractEmployment),
		textRule: textRule{Require: []*regexp.Regexp{ci(`non-compete`)}},
		Issue:    "Note: Non-compete clauses may have limited enforceability under Indian Contract Act",
	},
	{
		Types:    only(ContractLease),
		textRule: textRule{Exclude: ci(`stamp duty|registration`)},
		Issue:    "Lease agreements require proper stamp duty and registration under Indian Registration Act",
	},
	{
		Types:    only(ContractLease),
		textRule: textRule{Exclude: ci(`security deposit`)},
		Issue:    "Security deposit terms should be clearly specified",
	},
	{
		Types:    only(ContractVendor),
		textRule: textRule{Exclude: ci(`warrant`)},
		Issue:    "Vendor contract should specify a warranty period and warranty scope for supplied goods or services",
	},
	{
		Types:    only(ContractVendor),
		textRule: textRule{Exclude: ci(`quality|acceptance criteria|inspection`)},
		Issue:    "Define quality standards and acceptance criteria so substandard supplies can be rejected",
	},
	{
		Types:    only(ContractPartnership),
		textRule: textRule{Exclude: ci(`retire|exit|dissolution|withdraw`)},
		Issue:    "Partnership deed should define partner exit and dissolution procedures",
	},
	{
		Types:    only(ContractPartnership),
		textRule: textRule{Exclude: ci(`arbitrat|mediat|dispute resolution`)},
		Issue:    "Partnership deed should include a dispute resolution mechanism such as mediation before arbitration",
	},
	{
		Types:    only(ContractService),
		textRule: textRule{Exclude: ci(`limited to|shall not exceed|aggregate liability|\bcap(?:ped)?\b`)},
		Issue:    "Service agreement does not cap liability - consider a cap of 12 months of fees",
	},
	{
		Types:    only(ContractService),
		textRule: textRule{Exclude: ci(`scope of work|deliverable`)},
		Issue:    "Service agreement should define the scope of work and specific deliverables",
	},
	{
		Types:    only(ContractNDA),
		textRule: textRule{Exclude: ci(`\d+\s*(?:year|month)s?`)},
		Issue:    "Confidentiality obligations should be limited to a fixed period",
	},
	{
		textRule: textRule{Require: []*regexp.Regexp{ci(`foreign jurisdiction|laws of usa|laws of uk|delaware|california`)}},
		Issue:    "Contract specifies foreign jurisdiction - may complicate dispute resolution for Indian SMEs",
	},
	{
		textRule: textRule{Require: []*regexp.Regexp{ci(`payment|fee|amount`)}, Exclude: ci(`gst|goods and services tax`)},
		Issue:    "Consider clarifying GST applicability and responsibility",
	},
	{
		textRule: textRule{Require: []*regexp.Regexp{ci(`personal guarantee`)}},
		Issue:    "Personal guarantee clause detected - understand personal liability implications",
	},
}

type ambiguityRule struct {
	textRule
	Format string
}

var ambiguityRules = []ambiguityRule{
	{
		textRule: textRule{Require: []*regexp.Regexp{ci(`reasonable|appropriate|adequate|sufficient`)}, Exclude: ci(`defined as|means`)},
		Format:   `"%s" uses subjective terms like "reasonable" without clear definition`,
	},
	{
		textRule: textRule{Require: []*regexp.Regexp{ci(`may|might|could`), ci(`shall|must`)}},
		Format:   `"%s" mixes mandatory and permissive language - clarify obligations`,
	},
	{
		textRule: textRule{Require: []*regexp.Regexp{ci(`etc\.|and so on|and similar|or other`)}},
		Format:   `"%s" contains open-ended language that may be interpreted broadly`,
	},
	{
		textRule: textRule{Require: []*regexp.Regexp{ci(`material|significant|substantial`)}, Exclude: ci(`defined|means|refers to`)},
		Format:   `"%s" uses undefined materiality thresholds`,
	},
}

// CheckCompliance evaluates the type-specific rules for t followed by the
// rules that apply to every contract. Each rule yields at most one issue.
func CheckCompliance(text string, t ContractType) []string {
	issues := []string{}
	for _, r := range complianceRules {
		if r.appliesTo(t) && r.matches(text) {
			issues = append(issues, r.Issue)
		}
	}
	return issues
}

// FindAmbiguities flags vague wording clause by clause and keeps the first five.
func FindAmbiguities(clauses []Clause) []string {
	out := []string{}
	for _, c := range clauses {
		for _, r := range ambiguityRules {
			if !r.matches(c.Content) {
				continue
			}
			out = append(out, fmt.Sprintf(r.Format, c.Title))
			if len(out) == maxAmbiguities {
				return out
			}
		}
	}
	return out
}
