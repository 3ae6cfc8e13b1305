package analysis

import (
	"regexp"
	"strings"
)

// Confidence is static per pattern family.
const (
	partyConfidence        = 0.85
	dateConfidence         = 0.90
	amountConfidence       = 0.88
	durationConfidence     = 0.85
	jurisdictionConfidence = 0.82
)

type entityPattern struct {
	Type       EntityType
	Pattern    *regexp.Regexp
	Group      int
	Confidence float64
}

// Party and jurisdiction captures stop at the end of the line so a name never
// swallows the following paragraph.
var entityPatterns = []entityPattern{
	{EntityParty, regexp.MustCompile(`(?i)(?:by and between|between)[ \t]+([A-Z][A-Za-z ]+(?:Ltd|Pvt|Inc|LLC|LLP)?\.?)`), 1, partyConfidence},
	{EntityParty, regexp.MustCompile(`(?i)(?:party of the first part|first party)[: \t]+([A-Za-z ]+)`), 1, partyConfidence},
	{EntityParty, regexp.MustCompile(`(?i)(?:party of the second part|second party)[: \t]+([A-Za-z ]+)`), 1, partyConfidence},
	{EntityDate, regexp.MustCompile(`(?i)\b(\d{1,2}[-/]\d{1,2}[-/]\d{2,4}|\d{1,2}\s+(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4})`), 1, dateConfidence},
	{EntityAmount, regexp.MustCompile(`(?i)(\b(?:Rs\.?|INR)\s*\d[\d,]*(?:\.\d+)?|\$\s*\d[\d,]*(?:\.\d+)?|₹\s*\d[\d,]*(?:\.\d+)?)`), 1, amountConfidence},
	{EntityDuration, regexp.MustCompile(`(?i)\b(\d+\s*(?:year|month|week|day)s?)\b`), 1, durationConfidence},
	{EntityJurisdiction, regexp.MustCompile(`(?i)(?:courts? of|jurisdiction of)[ \t]+([A-Za-z ]+)`), 1, jurisdictionConfidence},
}

// ExtractEntities runs every pattern family over the whole text. Families are
// independent and results are not deduplicated.
func ExtractEntities(text string) []ExtractedEntity {
	entities := []ExtractedEntity{}
	for _, p := range entityPatterns {
		for _, m := range p.Pattern.FindAllStringSubmatch(text, -1) {
			value := strings.TrimSpace(m[p.Group])
			if value == "" {
				continue
			}
			entities = append(entities, ExtractedEntity{
				Type:       p.Type,
				Value:      value,
				Confidence: p.Confidence,
			})
		}
	}
	return entities
}
