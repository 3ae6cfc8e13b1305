package analysis

import "time"

// Disclaimer accompanies every rendered analysis.
const Disclaimer = "This is an automated, pattern-based risk triage, not legal advice. " +
	"Results may be incomplete or inaccurate. Consult a qualified lawyer before signing."

type Language string

const (
	LanguageEnglish Language = "english"
	LanguageHindi   Language = "hindi"
	LanguageMixed   Language = "mixed"
)

type ContractType string

const (
	ContractEmployment  ContractType = "employment"
	ContractVendor      ContractType = "vendor"
	ContractLease       ContractType = "lease"
	ContractPartnership ContractType = "partnership"
	ContractService     ContractType = "service"
	ContractNDA         ContractType = "nda"
	ContractUnknown     ContractType = "unknown"
)

// ContractTypes lists every contract type in classification precedence order,
// followed by the unknown fallback.
var ContractTypes = []ContractType{
	ContractEmployment,
	ContractVendor,
	ContractLease,
	ContractPartnership,
	ContractService,
	ContractNDA,
	ContractUnknown,
}

// DisplayName returns the human readable agreement name used in summaries.
func (t ContractType) DisplayName() string {
	switch t {
	case ContractEmployment:
		return "Employment Agreement"
	case ContractVendor:
		return "Vendor/Supplier Contract"
	case ContractLease:
		return "Lease/Rental Agreement"
	case ContractPartnership:
		return "Partnership Deed"
	case ContractService:
		return "Service Agreement"
	case ContractNDA:
		return "Non-Disclosure Agreement"
	default:
		return "Contract"
	}
}

type ClauseType string

const (
	ClausePenalty         ClauseType = "penalty"
	ClauseIndemnity       ClauseType = "indemnity"
	ClauseTermination     ClauseType = "termination"
	ClauseArbitration     ClauseType = "arbitration"
	ClauseJurisdiction    ClauseType = "jurisdiction"
	ClauseAutoRenewal     ClauseType = "auto-renewal"
	ClauseLockIn          ClauseType = "lock-in"
	ClauseNonCompete      ClauseType = "non-compete"
	ClauseIPTransfer      ClauseType = "ip-transfer"
	ClauseConfidentiality ClauseType = "confidentiality"
	ClausePayment         ClauseType = "payment"
	ClauseLiability       ClauseType = "liability"
	ClauseGeneral         ClauseType = "general"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type EntityType string

const (
	EntityParty        EntityType = "party"
	EntityDate         EntityType = "date"
	EntityAmount       EntityType = "amount"
	EntityDuration     EntityType = "duration"
	EntityJurisdiction EntityType = "jurisdiction"
	// EntityDeliverable is part of the result vocabulary but no extractor emits it yet.
	EntityDeliverable EntityType = "deliverable"
)

type Category string

const (
	CategoryObligation  Category = "obligation"
	CategoryRight       Category = "right"
	CategoryProhibition Category = "prohibition"
	CategoryGeneral     Category = "general"
)

// ExtractedEntity is one pattern match. Confidence is fixed per pattern family.
type ExtractedEntity struct {
	Type       EntityType `json:"type"`
	Value      string     `json:"value"`
	Confidence float64    `json:"confidence"`
}

type Clause struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Type          ClauseType `json:"type"`
	RiskLevel     RiskLevel  `json:"risk_level"`
	RiskScore     int        `json:"risk_score"`
	Explanation   string     `json:"explanation"`
	Concerns      []string   `json:"concerns"`
	Suggestions   []string   `json:"suggestions"`
	IsUnfavorable bool       `json:"is_unfavorable"`
	Category      Category   `json:"category"`
}

// ContractAnalysis is the complete result of one Analyze call. It is built once
// and never mutated afterwards.
type ContractAnalysis struct {
	ID               string            `json:"id"`
	FileName         string            `json:"file_name"`
	ContractType     ContractType      `json:"contract_type"`
	Language         Language          `json:"language"`
	UploadedAt       time.Time         `json:"uploaded_at"`
	OverallRiskScore int               `json:"overall_risk_score"`
	OverallRiskLevel RiskLevel         `json:"overall_risk_level"`
	Clauses          []Clause          `json:"clauses"`
	Entities         []ExtractedEntity `json:"entities"`
	Summary          string            `json:"summary"`
	KeyFindings      []string          `json:"key_findings"`
	Recommendations  []string          `json:"recommendations"`
	ComplianceIssues []string          `json:"compliance_issues"`
	Ambiguities      []string          `json:"ambiguities"`
}

// HighRiskClauses returns the clauses bucketed as high risk, in document order.
func (a ContractAnalysis) HighRiskClauses() []Clause {
	return filterClauses(a.Clauses, func(c Clause) bool { return c.RiskLevel == RiskHigh })
}

// EntitiesOf returns the values of all entities of type t, in extraction order.
func (a ContractAnalysis) EntitiesOf(t EntityType) []string {
	return entityValues(a.Entities, t)
}

func filterClauses(clauses []Clause, keep func(Clause) bool) []Clause {
	var out []Clause
	for _, c := range clauses {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func entityValues(entities []ExtractedEntity, t EntityType) []string {
	var out []string
	for _, e := range entities {
		if e.Type == t {
			out = append(out, e.Value)
		}
	}
	return out
}
