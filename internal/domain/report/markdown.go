// Package report renders a PatternReport as human-readable Markdown.
// Rendering is pure formatting: no analysis, and a fixed section order
// (tokens, structure, component conventions, naming, imports) so successive
// reports diff cleanly.
package report

import (
	"fmt"
	"strings"

	"github.com/patternlens/patternlens/internal/domain"
)

const (
	maxColorLines = 15
	maxValueLines = 10
	maxFolderLine = 10
)

// Markdown renders every field of the report under a fixed heading order.
func Markdown(r *domain.PatternReport) string {
	var b strings.Builder

	b.WriteString("# Frontend Project Pattern Analysis\n\n")

	b.WriteString("## Design Tokens\n\n")
	valueSection(&b, "Colors", r.Colors, maxColorLines)
	valueSection(&b, "Box Shadows", r.Shadows, maxValueLines)
	valueSection(&b, "Border Radius", r.Radii, maxValueLines)
	valueSection(&b, "Spacing", r.Spacing, maxValueLines)
	valueSection(&b, "Font Sizes", r.FontSizes, maxValueLines)
	valueSection(&b, "Z-Indices", r.ZIndices, maxValueLines)

	folderSection(&b, r.FolderPaths)
	conventionsSection(&b, r.ComponentConventions)
	namingSection(&b, r.NamingStyle)
	importSection(&b, r.ImportStyle)

	return b.String()
}

func valueSection(b *strings.Builder, title string, values []string, limit int) {
	fmt.Fprintf(b, "### %s\n\n", title)
	if len(values) == 0 {
		b.WriteString("*none detected*\n\n")
		return
	}

	b.WriteString("```css\n")
	for i, v := range values {
		if i == limit {
			fmt.Fprintf(b, "... and %d more\n", len(values)-limit)
			break
		}
		b.WriteString(v)
		b.WriteString("\n")
	}
	b.WriteString("```\n\n")
}

func folderSection(b *strings.Builder, paths []string) {
	b.WriteString("## Folder Structure\n\n")
	if len(paths) == 0 {
		b.WriteString("*no component folders detected*\n\n")
		return
	}

	for i, p := range paths {
		if i == maxFolderLine {
			fmt.Fprintf(b, "- ... and %d more\n", len(paths)-maxFolderLine)
			break
		}
		fmt.Fprintf(b, "- `%s`\n", p)
	}
	b.WriteString("\n")
}

func conventionsSection(b *strings.Builder, c domain.ComponentConventions) {
	b.WriteString("## Component Conventions\n\n")
	if c.Total == 0 {
		b.WriteString("*no components analyzed*\n\n")
		return
	}

	fmt.Fprintf(b, "Analyzed %d components:\n\n", c.Total)
	statLine(b, "TypeScript usage", c.Typed, c.Total)
	statLine(b, "Props interface defined", c.PropsDeclared, c.Total)
	statLine(b, "Using hooks", c.UsesHooks, c.Total)
	statLine(b, "Default exports", c.DefaultExport, c.Total)
	statLine(b, "Named exports", c.NamedExport, c.Total)
	b.WriteString("\n")
}

func statLine(b *strings.Builder, label string, count, total int) {
	pct := float64(count) / float64(total) * 100
	fmt.Fprintf(b, "- **%s:** %d/%d (%.0f%%)\n", label, count, total, pct)
}

func namingSection(b *strings.Builder, style string) {
	b.WriteString("## Naming Conventions\n\n")
	if style == "" {
		b.WriteString("*no clear naming pattern detected*\n\n")
		return
	}
	fmt.Fprintf(b, "**Preferred file naming:** `%s`\n\n", style)
}

func importSection(b *strings.Builder, style string) {
	b.WriteString("## Import Patterns\n\n")
	switch style {
	case domain.ImportAliased:
		b.WriteString("**Preferred import style:** path aliases (`@/...`)\n")
	case domain.ImportRelative:
		b.WriteString("**Preferred import style:** relative imports (`../...`)\n")
	default:
		b.WriteString("*no import patterns detected*\n")
	}
}
