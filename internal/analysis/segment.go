package analysis

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	minClauseContent    = 20
	minParagraphContent = 50
	maxFallbackSections = 15
	maxTitleRunes       = 80
)

// headerLine matches a whole line such as "3. Termination", "B) Fees",
// "IV. Notices", "CLAUSE 4: Governing Law" or "Section 2 - Payment". A letter
// marker is one letter or a roman numeral, so "Mr. Sharma" is prose. The label
// may be Hindi.
var headerLine = regexp.MustCompile(
	`(?i)^\s*(?:\d+(?:\.\d+)*[.)]|(?:[A-Z]|[IVX]{2,5})[.)]|CLAUSE\s*\d+|ARTICLE\s*\d+|SECTION\s*\d+)` +
		`[:.\-–\s]*([\p{L}\p{M}][\p{L}\p{M} &/,'()\-]*?)[.:]?\s*$`)

var paragraphBreak = regexp.MustCompile(`\n(?:[ \t\r]*\n)+`)

// Segment is one slice of the document before classification. Heading is
// false for segments produced by the paragraph fallback.
type Segment struct {
	Title   string
	Content string
	Heading bool
}

// SegmentClauses splits text on clause header lines. When no header yields a
// clause with enough content it falls back to blank-line paragraphs.
func SegmentClauses(text string) []Segment {
	if segments := segmentByHeaders(text); len(segments) > 0 {
		return segments
	}
	return segmentByParagraphs(text)
}

func segmentByHeaders(text string) []Segment {
	var (
		segments []Segment
		title    string
		body     []string
		open     bool
	)
	flush := func() {
		if !open {
			return
		}
		content := strings.TrimSpace(strings.Join(body, "\n"))
		if utf8.RuneCountInString(content) > minClauseContent {
			segments = append(segments, Segment{Title: title, Content: content, Heading: true})
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if t, ok := headerTitle(line); ok {
			flush()
			title, body, open = t, nil, true
			continue
		}
		if open {
			body = append(body, strings.TrimRight(line, "\r"))
		}
	}
	flush()
	return segments
}

func headerTitle(line string) (string, bool) {
	m := headerLine.FindStringSubmatch(strings.TrimRight(line, "\r"))
	if m == nil {
		return "", false
	}
	title := strings.TrimSpace(m[1])
	if title == "" || utf8.RuneCountInString(title) > maxTitleRunes {
		return "", false
	}
	return title, true
}

func segmentByParagraphs(text string) []Segment {
	var segments []Segment
	for _, para := range paragraphBreak.Split(text, -1) {
		para = strings.TrimSpace(para)
		if utf8.RuneCountInString(para) <= minParagraphContent {
			continue
		}
		segments = append(segments, Segment{
			Title:   "Section " + strconv.Itoa(len(segments)+1),
			Content: para,
		})
		if len(segments) == maxFallbackSections {
			break
		}
	}
	return segments
}

// BuildClause classifies, scores and annotates one segment. Fallback segments
// are classified on content alone.
func BuildClause(index int, seg Segment) Clause {
	classifyTitle := ""
	if seg.Heading {
		classifyTitle = seg.Title
	}
	clauseType := ClassifyClause(classifyTitle, seg.Content)
	score, concerns := ScoreRisk(seg.Content)
	return Clause{
		ID:            "clause-" + strconv.Itoa(index),
		Title:         seg.Title,
		Content:       seg.Content,
		Type:          clauseType,
		RiskLevel:     ClauseRiskLevel(score),
		RiskScore:     score,
		Explanation:   Explain(clauseType),
		Concerns:      concerns,
		Suggestions:   Suggest(clauseType, concerns),
		IsUnfavorable: IsUnfavorable(score),
		Category:      Categorize(seg.Content),
	}
}
