// internal/output/markdown.go
package output

import (
	"fmt"
	"strings"

	"github.com/petrotech/petrotech/internal/filter"
)

// MarkdownFormatter outputs results as human-readable Markdown.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format renders the SearchResult as a Markdown table.
func (f *MarkdownFormatter) Format(result *SearchResult) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# " + Headline + "\n\n")
	b.WriteString(Summary(result) + "\n\n")

	if len(result.Tools) == 0 {
		b.WriteString("*" + EmptyMessage + "*\n")
		return []byte(b.String()), nil
	}

	b.WriteString("| Tool | Category | Tags | Licensing | Added |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, t := range result.Tools {
		added := t.Added
		if added == "" {
			added = "-"
		}
		fmt.Fprintf(&b, "| **%s** (`%s`) | %s | %s | %s | %s |\n",
			cell(t.Name), t.ID, cell(result.CategoryName(t.Category)),
			cell(strings.Join(t.Tags, ", ")), cell(t.Licensing), added)
	}
	return []byte(b.String()), nil
}

// FormatTool renders the ToolDetail with ToolMarkdown.
func (f *MarkdownFormatter) FormatTool(detail *ToolDetail) ([]byte, error) {
	return []byte(ToolMarkdown(detail)), nil
}

// Summary is the one-line description of a result: count, facets and sort.
func Summary(result *SearchResult) string {
	toolLabel := "tools"
	if result.CatalogSize == 1 {
		toolLabel = "tool"
	}
	parts := []string{fmt.Sprintf("Showing %d of %d %s", result.Total, result.CatalogSize, toolLabel)}
	if result.Search != "" {
		parts = append(parts, fmt.Sprintf("search: %q", result.Search))
	}
	if result.Category != "" {
		parts = append(parts, "category: "+result.CategoryName(result.Category))
	}
	if len(result.Tags) > 0 {
		parts = append(parts, "tags: "+strings.Join(result.Tags, " + "))
	}
	parts = append(parts, filter.SortOrder(result.Sort).Label())
	return strings.Join(parts, " · ")
}

// ToolMarkdown renders the full detail view of a tool.
func ToolMarkdown(d *ToolDetail) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", d.Name)

	b.WriteString("## Category\n\n")
	b.WriteString(d.CategoryName + "\n\n")

	b.WriteString("## Description\n\n")
	b.WriteString(orNone(d.Description) + "\n\n")

	if len(d.Tags) > 0 {
		b.WriteString("## Tags\n\n")
		for i, tag := range d.Tags {
			if i > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "`%s`", tag)
		}
		b.WriteString("\n\n")
	}

	if len(d.Features) > 0 {
		b.WriteString("## Key Features\n\n")
		for _, feature := range d.Features {
			b.WriteString("- " + feature + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("## Industry Use Case\n\n")
	b.WriteString(orNone(d.UseCase) + "\n\n")

	if len(d.Integrations) > 0 {
		b.WriteString("## Integration\n\n")
		b.WriteString(strings.Join(d.Integrations, ", ") + "\n\n")
	}

	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "**Licensing:** %s", orNone(d.Licensing))
	if d.Added != "" {
		fmt.Fprintf(&b, " · **Added:** %s", d.Added)
	}
	b.WriteString("\n")
	if d.Homepage != "" {
		fmt.Fprintf(&b, "\n[Learn More](%s)\n", d.Homepage)
	}
	return b.String()
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "_None listed._"
	}
	return s
}

// cell escapes pipe characters inside a table cell.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
