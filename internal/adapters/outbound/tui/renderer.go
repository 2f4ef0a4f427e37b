package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/patternlens/patternlens/internal/domain"
)

// ── warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(64)

	gradeColors = map[string]lipgloss.Color{
		"A+": success,
		"A":  success,
		"B":  lipgloss.Color("#A3E635"), // lime
		"C":  warning,
		"D":  lipgloss.Color("#FB923C"), // orange
		"F":  danger,
	}

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	separatorLine = faintStyle.Render(strings.Repeat("─", 60))
)

// RenderScanSummary formats the outcome of a project scan.
func RenderScanSummary(report *domain.PatternReport, outputPath, commitHash string) string {
	var b strings.Builder

	title := headerStyle.Render("patternlens")
	subtitle := dimStyle.Render("Design Pattern Scan")
	countLine := titleStyle.Render(fmt.Sprintf("%d tokens  ·  %d components",
		report.TokenCount(), report.ComponentConventions.Total))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + countLine))
	b.WriteString("\n\n")

	countRow(&b, "colors", len(report.Colors))
	countRow(&b, "shadows", len(report.Shadows))
	countRow(&b, "radii", len(report.Radii))
	countRow(&b, "spacing", len(report.Spacing))
	countRow(&b, "font sizes", len(report.FontSizes))
	countRow(&b, "z-indices", len(report.ZIndices))

	b.WriteString("\n")
	inferredRow(&b, "naming style", report.NamingStyle)
	inferredRow(&b, "import style", report.ImportStyle)
	inferredRow(&b, "component folders", fmt.Sprintf("%d", len(report.FolderPaths)))

	if commitHash != "" {
		short := commitHash
		if len(short) > 7 {
			short = short[:7]
		}
		inferredRow(&b, "commit", short)
	}

	if report.Empty() {
		b.WriteString("\n  " + warnTagStyle.Render("no qualifying files found") +
			dimStyle.Render("  (report is empty but valid)") + "\n")
	}

	for _, note := range report.Notes {
		b.WriteString("  " + faintStyle.Render(note) + "\n")
	}

	b.WriteString("\n  " + dimStyle.Render("artifact written to ") + titleStyle.Render(outputPath) + "\n")
	return b.String()
}

func countRow(b *strings.Builder, label string, n int) {
	style := passStyle
	if n == 0 {
		style = faintStyle
	}
	fmt.Fprintf(b, "  %s %s\n", dimStyle.Render(padRight(label, 20)), style.Render(fmt.Sprintf("%d", n)))
}

func inferredRow(b *strings.Builder, label, value string) {
	if value == "" {
		value = "—"
	}
	fmt.Fprintf(b, "  %s %s\n", dimStyle.Render(padRight(label, 20)), titleStyle.Render(value))
}

// RenderCompliance formats a ComplianceResult with its score, grade and
// findings grouped by severity.
func RenderCompliance(result *domain.ComplianceResult) string {
	var b strings.Builder

	grade := domain.GradeFor(result.Score)
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(fmt.Sprintf("%d / 100  %s", result.Score, grade))

	fileLine := dimStyle.Render(result.File)
	b.WriteString(boxStyle.Render(titleStyle.Render("Compliance Score") + "\n" + fileLine + "\n\n" + scoreStyled))
	b.WriteString("\n")

	renderFindingSection(&b, "Issues (must fix)", result.Issues, errorTagStyle)
	renderFindingSection(&b, "Warnings", result.Warnings, warnTagStyle)
	renderFindingSection(&b, "Suggestions", result.Suggestions, infoTagStyle)

	b.WriteString("\n  " + separatorLine + "\n")
	if result.Compliant && len(result.Warnings) == 0 && len(result.Suggestions) == 0 {
		b.WriteString("  " + passStyle.Render("File follows all project patterns.") + "\n")
	} else if result.Compliant {
		b.WriteString("  " + passStyle.Render("No blocking issues.") + "\n")
	} else {
		b.WriteString("  " + failStyle.Render("Blocking issues found.") + "\n")
	}

	return b.String()
}

func renderFindingSection(b *strings.Builder, title string, findings []domain.Finding, tagStyle lipgloss.Style) {
	if len(findings) == 0 {
		return
	}

	b.WriteString("\n")
	fmt.Fprintf(b, "  %s %s\n",
		tagStyle.Render(title),
		dimStyle.Render(fmt.Sprintf("(%d)", len(findings))),
	)
	for _, f := range findings {
		fmt.Fprintf(b, "    %s %s\n", faintStyle.Render("•"), dimStyle.Render(f.Message))
	}
}

// RenderHistory formats compliance check history for terminal output.
func RenderHistory(entries []domain.CheckEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No check history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Check History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		scoreStyled := lipgloss.NewStyle().
			Foreground(scoreColor(e.Score)).
			Render(fmt.Sprintf("%d/100", e.Score))

		ts := e.Timestamp
		if len(ts) > 10 {
			ts = ts[:10]
		}

		fmt.Fprintf(&b, "  %s  %s  %s  %s  %s\n",
			dimStyle.Render(ts),
			faintStyle.Render(hash),
			scoreStyled,
			e.Grade,
			dimStyle.Render(e.File),
		)
	}

	return b.String()
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return success
	case score >= 60:
		return lipgloss.Color("#A3E635") // lime
	case score >= 40:
		return warning
	default:
		return danger
	}
}

func gradeColor(grade string) lipgloss.Color {
	if c, ok := gradeColors[grade]; ok {
		return c
	}
	return fg
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
