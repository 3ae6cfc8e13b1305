// Package report renders a finished contract analysis for export.
package report

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/ericksa/contractlens/internal/analysis"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
	FormatText     Format = "text"
)

// ParseFormat accepts the format names used on the command line and in
// query strings. "md" is an alias for markdown.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatMarkdown, FormatHTML, FormatJSON, FormatText:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown report format %q", s)
	}
}

// Render returns the report body and its content type.
func Render(a analysis.ContractAnalysis, f Format) ([]byte, string, error) {
	switch f {
	case FormatMarkdown:
		return []byte(Markdown(a)), "text/markdown; charset=utf-8", nil
	case FormatHTML:
		body, err := HTML(a)
		if err != nil {
			return nil, "", err
		}
		return []byte(body), "text/html; charset=utf-8", nil
	case FormatJSON:
		body, err := json.MarshalIndent(a, "", "  ")
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal analysis: %w", err)
		}
		return body, "application/json", nil
	case FormatText:
		return []byte(Text(a)), "text/plain; charset=utf-8", nil
	default:
		return nil, "", fmt.Errorf("unknown report format %q", f)
	}
}

// Markdown builds the full analysis report.
func Markdown(a analysis.ContractAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Contract Analysis Report\n\n")
	fmt.Fprintf(&b, "- File: %s\n", orDash(a.FileName))
	fmt.Fprintf(&b, "- Analysis ID: `%s`\n", a.ID)
	fmt.Fprintf(&b, "- Contract type: %s\n", a.ContractType.DisplayName())
	fmt.Fprintf(&b, "- Language: %s\n", a.Language)
	fmt.Fprintf(&b, "- Analyzed: %s\n", a.UploadedAt.Format("2 January 2006 15:04 MST"))
	fmt.Fprintf(&b, "- Overall risk: **%d/100 (%s)**\n\n", a.OverallRiskScore, strings.ToUpper(string(a.OverallRiskLevel)))
	fmt.Fprintf(&b, "> %s\n\n", analysis.Disclaimer)

	fmt.Fprintf(&b, "## Summary\n\n%s\n\n", a.Summary)
	writeList(&b, "Key Findings", a.KeyFindings)
	writeList(&b, "Recommendations", a.Recommendations)
	writeList(&b, "Compliance Issues", a.ComplianceIssues)
	writeList(&b, "Ambiguities", a.Ambiguities)

	if len(a.Entities) > 0 {
		fmt.Fprintf(&b, "## Extracted Entities\n\n")
		fmt.Fprintf(&b, "| Type | Value | Confidence |\n|------|-------|------------|\n")
		for _, e := range a.Entities {
			fmt.Fprintf(&b, "| %s | %s | %.0f%% |\n", e.Type, cell(e.Value), e.Confidence*100)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## Clauses\n\n")
	if len(a.Clauses) == 0 {
		fmt.Fprintf(&b, "No clauses were identified.\n")
	}
	for _, c := range a.Clauses {
		writeClause(&b, c)
	}
	return b.String()
}

func writeClause(b *strings.Builder, c analysis.Clause) {
	fmt.Fprintf(b, "### %s\n\n", c.Title)
	fmt.Fprintf(b, "- Type: `%s`\n", c.Type)
	fmt.Fprintf(b, "- Category: %s\n", c.Category)
	fmt.Fprintf(b, "- Risk: %d/100 (%s)", c.RiskScore, c.RiskLevel)
	if c.IsUnfavorable {
		b.WriteString(" **unfavorable**")
	}
	b.WriteString("\n\n")
	fmt.Fprintf(b, "%s\n\n", c.Explanation)
	for _, line := range strings.Split(c.Content, "\n") {
		fmt.Fprintf(b, "> %s\n", line)
	}
	b.WriteString("\n")
	if len(c.Concerns) > 0 {
		fmt.Fprintf(b, "Concerns:\n\n")
		for _, s := range c.Concerns {
			fmt.Fprintf(b, "- %s\n", s)
		}
		b.WriteString("\n")
	}
	if len(c.Suggestions) > 0 {
		fmt.Fprintf(b, "Suggestions:\n\n")
		for _, s := range c.Suggestions {
			fmt.Fprintf(b, "- %s\n", s)
		}
		b.WriteString("\n")
	}
}

func writeList(b *strings.Builder, heading string, items []string) {
	fmt.Fprintf(b, "## %s\n\n", heading)
	if len(items) == 0 {
		fmt.Fprintf(b, "- None\n\n")
		return
	}
	for _, s := range items {
		fmt.Fprintf(b, "- %s\n", s)
	}
	b.WriteString("\n")
}

// HTML converts the Markdown report into a standalone document.
func HTML(a analysis.ContractAnalysis) (string, error) {
	var content strings.Builder
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(Markdown(a)), &content); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	title := "Contract Analysis"
	if a.FileName != "" {
		title += " - " + a.FileName
	}
	return "<!doctype html><html><head><meta charset='utf-8'><title>" + html.EscapeString(title) + "</title>" +
		"<style>body{font-family:sans-serif;max-width:960px;margin:0 auto;padding:1rem;line-height:1.5;} " +
		"blockquote{border-left:3px solid #a8a29e;margin:0;padding:0 0.75rem;color:#44403c;} " +
		"table{border-collapse:collapse;} th,td{border:1px solid #a8a29e;padding:0.3rem 0.5rem;text-align:left;}</style>" +
		"</head><body class='risk-" + string(a.OverallRiskLevel) + "'>" + content.String() + "</body></html>", nil
}

// Text is a plain terminal rendering without Markdown markup.
func Text(a analysis.ContractAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", orDash(a.FileName), a.ContractType.DisplayName())
	fmt.Fprintf(&b, "Overall risk: %d/100 %s\n\n", a.OverallRiskScore, strings.ToUpper(string(a.OverallRiskLevel)))
	fmt.Fprintf(&b, "%s\n", a.Summary)

	section := func(heading string, items []string) {
		if len(items) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n%s:\n", heading)
		for _, s := range items {
			fmt.Fprintf(&b, "  * %s\n", s)
		}
	}
	section("Key findings", a.KeyFindings)
	section("Recommendations", a.Recommendations)
	section("Compliance", a.ComplianceIssues)
	section("Ambiguities", a.Ambiguities)

	if len(a.Clauses) > 0 {
		fmt.Fprintf(&b, "\nClauses:\n")
	}
	for _, c := range a.Clauses {
		flag := ""
		if c.IsUnfavorable {
			flag = " !"
		}
		fmt.Fprintf(&b, "  [%-6s %3d]%s %s (%s)\n", c.RiskLevel, c.RiskScore, flag, c.Title, c.Type)
	}
	fmt.Fprintf(&b, "\n%s\n", analysis.Disclaimer)
	return b.String()
}

func cell(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "|", `\|`), "\n", " ")
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
