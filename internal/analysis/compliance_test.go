package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	vendorWarranty     = "Vendor contract should specify a warranty period and warranty scope for supplied goods or services"
	vendorQuality      = "Define quality standards and acceptance criteria so substandard supplies can be rejected"
	partnershipExit    = "Partnership deed should define partner exit and dissolution procedures"
	partnershipDispute = "Partnership deed should include a dispute resolution mechanism such as mediation before arbitration"
	serviceCap         = "Service agreement does not cap liability - consider a cap of 12 months of fees"
	serviceScope       = "Service agreement should define the scope of work and specific deliverables"
)

func TestCheckCompliance(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		contractType ContractType
		want         []string
	}{
		{
			name:         "employment without notice or PF",
			text:         "The employee receives a monthly salary.",
			contractType: ContractEmployment,
			want: []string{
				"Employment contract should specify notice period as per Indian labor laws",
				"Consider including PF and Gratuity provisions as required under Indian law",
			},
		},
		{
			name:         "employment rules ignored for other types",
			text:         "The employee receives a monthly salary.",
			contractType: ContractUnknown,
			want:         []string{},
		},
		{
			name:         "lease",
			text:         "The tenant occupies the flat.",
			contractType: ContractLease,
			want: []string{
				"Lease agreements require proper stamp duty and registration under Indian Registration Act",
				"Security deposit terms should be clearly specified",
			},
		},
		{
			name:         "foreign jurisdiction and GST",
			text:         "Payment is governed by the laws of Delaware.",
			contractType: ContractUnknown,
			want: []string{
				"Contract specifies foreign jurisdiction - may complicate dispute resolution for Indian SMEs",
				"Consider clarifying GST applicability and responsibility",
			},
		},
		{
			name:         "GST mentioned",
			text:         "Payment amount excludes GST.",
			contractType: ContractUnknown,
			want:         []string{},
		},
		{
			name:         "personal guarantee",
			text:         "The director gives a personal guarantee.",
			contractType: ContractUnknown,
			want:         []string{"Personal guarantee clause detected - understand personal liability implications"},
		},
		{
			name:         "vendor without warranty or quality terms",
			text:         "The supplier delivers goods to the buyer.",
			contractType: ContractVendor,
			want:         []string{vendorWarranty, vendorQuality},
		},
		{
			name:         "vendor with warranty only",
			text:         "The supplier warrants the goods for 12 months.",
			contractType: ContractVendor,
			want:         []string{vendorQuality},
		},
		{
			name:         "vendor with warranty and inspection",
			text:         "The supplier warrants the goods, subject to inspection on delivery.",
			contractType: ContractVendor,
			want:         []string{},
		},
		{
			name:         "vendor rules ignored for service",
			text:         "The supplier delivers goods to the buyer.",
			contractType: ContractService,
			want:         []string{serviceCap, serviceScope},
		},
		{
			name:         "partnership without exit or dispute terms",
			text:         "The partners share profits equally.",
			contractType: ContractPartnership,
			want:         []string{partnershipExit, partnershipDispute},
		},
		{
			name:         "partnership with exit only",
			text:         "A partner may withdraw on notice.",
			contractType: ContractPartnership,
			want:         []string{partnershipDispute},
		},
		{
			name:         "partnership with exit and arbitration",
			text:         "A partner may retire on notice and disputes go to arbitration.",
			contractType: ContractPartnership,
			want:         []string{},
		},
		{
			name:         "service with scope only",
			text:         "The scope of work is set out in Schedule A.",
			contractType: ContractService,
			want:         []string{serviceCap},
		},
		{
			name:         "service with cap only",
			text:         "Aggregate liability shall not exceed one lakh rupees.",
			contractType: ContractService,
			want:         []string{serviceScope},
		},
		{
			name:         "service with cap and deliverables",
			text:         "Liability is limited to one month of charges and deliverables are listed in Schedule A.",
			contractType: ContractService,
			want:         []string{},
		},
		{
			name:         "nda with fixed duration",
			text:         "Obligations survive for 3 years.",
			contractType: ContractNDA,
			want:         []string{},
		},
		{
			name:         "nda without duration",
			text:         "Obligations survive forever.",
			contractType: ContractNDA,
			want:         []string{"Confidentiality obligations should be limited to a fixed period"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckCompliance(tt.text, tt.contractType))
		})
	}
}

func TestFindAmbiguities(t *testing.T) {
	clauses := []Clause{
		{Title: "Delivery", Content: "The vendor shall use reasonable care and may subcontract packing, crating etc. as needed."},
		{Title: "Definitions", Content: "Reasonable means within five working days."},
	}

	assert.Equal(t, []string{
		`"Delivery" uses subjective terms like "reasonable" without clear definition`,
		`"Delivery" mixes mandatory and permissive language - clarify obligations`,
		`"Delivery" contains open-ended language that may be interpreted broadly`,
	}, FindAmbiguities(clauses))
}

func TestFindAmbiguities_Materiality(t *testing.T) {
	clauses := []Clause{{Title: "Breach", Content: "A significant delay is a breach."}}
	assert.Equal(t, []string{`"Breach" uses undefined materiality thresholds`}, FindAmbiguities(clauses))
}

func TestFindAmbiguities_CappedAtFive(t *testing.T) {
	vague := Clause{Title: "Vague", Content: "The vendor shall use reasonable care and may subcontract packing, crating etc. as needed."}

	got := FindAmbiguities([]Clause{vague, vague, vague})

	assert.Len(t, got, 5)
	assert.NotNil(t, FindAmbiguities(nil))
}
