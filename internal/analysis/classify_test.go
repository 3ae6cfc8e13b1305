package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyContractType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want ContractType
	}{
		{"employment wins over later types", "The employer hires the employee on probation. The vendor leases premises to the tenant.", ContractEmployment},
		{"vendor", "The supplier shall deliver goods against each purchase order.", ContractVendor},
		{"lease", "The tenant shall pay the monthly rent to the landlord.", ContractLease},
		{"partnership", "Each partner makes a capital contribution.", ContractPartnership},
		{"service", "The consultant will complete the scope of work.", ContractService},
		{"nda", "The receiving side shall protect confidential information.", ContractNDA},
		{"unknown", "Hello world.", ContractUnknown},
		{"empty", "", ContractUnknown},
		{"case insensitive", "EMPLOYMENT OFFER", ContractEmployment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyContractType(tt.text))
		})
	}
}

func TestClassifyClause(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		content string
		want    ClauseType
	}{
		{"title drives match", "Termination", "Either party may end this arrangement with notice.", ClauseTermination},
		{"payment", "Payment Terms", "The client pays the invoice within 30 days.", ClausePayment},
		{"penalty precedes payment", "Late Payment", "Late payment attracts a penalty of two percent.", ClausePenalty},
		{"indemnity", "Indemnity", "The vendor will hold harmless the buyer.", ClauseIndemnity},
		{"auto renewal", "Renewal", "This term will auto renew each year.", ClauseAutoRenewal},
		{"general fallback", "Notices", "All notices are sent by post to the addresses above.", ClauseGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyClause(tt.title, tt.content))
		})
	}
}

func TestClauseTypes_GeneralLast(t *testing.T) {
	types := ClauseTypes()
	assert.Len(t, types, 13)
	assert.Equal(t, ClausePenalty, types[0])
	assert.Equal(t, ClauseGeneral, types[len(types)-1])
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		content string
		want    Category
	}{
		{"The tenant shall not sublet the flat.", CategoryProhibition},
		{"The tenant may not keep pets.", CategoryProhibition},
		{"The tenant shall pay on time.", CategoryObligation},
		{"The tenant may use the parking.", CategoryRight},
		{"Headings are for convenience.", CategoryGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.content))
		})
	}
}
