package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEntities(t *testing.T) {
	text := "This Agreement is made on 01/04/2024 by and between Acme Pvt Ltd.\n" +
		"The fee is Rs. 50,000 payable within 30 days.\n" +
		"Subject to the courts of Mumbai\n"

	entities := ExtractEntities(text)
	require.Len(t, entities, 5)

	assert.Equal(t, ExtractedEntity{Type: EntityParty, Value: "Acme Pvt Ltd.", Confidence: 0.85}, entities[0])
	assert.Equal(t, ExtractedEntity{Type: EntityDate, Value: "01/04/2024", Confidence: 0.90}, entities[1])
	assert.Equal(t, ExtractedEntity{Type: EntityAmount, Value: "Rs. 50,000", Confidence: 0.88}, entities[2])
	assert.Equal(t, ExtractedEntity{Type: EntityDuration, Value: "30 days", Confidence: 0.85}, entities[3])
	assert.Equal(t, ExtractedEntity{Type: EntityJurisdiction, Value: "Mumbai", Confidence: 0.82}, entities[4])
}

func TestExtractEntities_PartiesByRole(t *testing.T) {
	text := "First Party: Ravi Kumar\nSecond Party: Meena Iyer\n"

	assert.Equal(t, []string{"Ravi Kumar", "Meena Iyer"},
		entityValues(ExtractEntities(text), EntityParty))
}

func TestExtractEntities_Formats(t *testing.T) {
	text := "Signed 5 March 2023 and 12-06-23. Pay INR 1,200 or $ 300.50 or ₹500 over 2 weeks."
	entities := ExtractEntities(text)

	assert.Equal(t, []string{"5 March 2023", "12-06-23"}, entityValues(entities, EntityDate))
	assert.Equal(t, []string{"INR 1,200", "$ 300.50", "₹500"}, entityValues(entities, EntityAmount))
	assert.Equal(t, []string{"2 weeks"}, entityValues(entities, EntityDuration))
}

func TestExtractEntities_NoDeduplication(t *testing.T) {
	entities := ExtractEntities("A deposit of Rs. 100 and a fee of Rs. 100.")
	assert.Equal(t, []string{"Rs. 100", "Rs. 100"}, entityValues(entities, EntityAmount))
}

func TestExtractEntities_AmountNeedsDigits(t *testing.T) {
	entities := ExtractEntities("The partners, investors and officers agree.")
	assert.Empty(t, entityValues(entities, EntityAmount))
}

func TestExtractEntities_Empty(t *testing.T) {
	entities := ExtractEntities("")
	assert.NotNil(t, entities)
	assert.Empty(t, entities)
}
