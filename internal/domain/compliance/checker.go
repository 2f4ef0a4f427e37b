// Package compliance implements the scorer: it re-extracts pattern families
// from a single candidate file and tests each literal against the token sets
// of a previously produced PatternReport.
package compliance

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/patternlens/patternlens/internal/domain"
	"github.com/patternlens/patternlens/internal/domain/extract"
)

// Checker compares candidate files against a pattern report.
// Check is a pure function of the report, the content and the weights:
// identical inputs always yield identical results.
type Checker struct {
	weights domain.DeductionWeights
}

func NewChecker(weights domain.DeductionWeights) *Checker {
	return &Checker{weights: weights}
}

// Check produces a ComplianceResult for one candidate file. Findings are
// emitted in fixed extractor order: colors, shadows, radii, spacing, font
// sizes, z-indices, naming, imports, component shape. Within a token family
// the order is property literals, custom-property values, var() usages, then
// utility classes, each in document order.
func (c *Checker) Check(report *domain.PatternReport, content, filename string) *domain.ComplianceResult {
	result := &domain.ComplianceResult{
		File:        filename,
		Issues:      []domain.Finding{},
		Warnings:    []domain.Finding{},
		Suggestions: []domain.Finding{},
	}

	families := candidateFamilies(content)

	// Token-bearing families: absence from the report set is blocking.
	for _, cat := range []string{
		domain.CategoryColors, domain.CategoryShadows,
		domain.CategoryRadii, domain.CategorySpacing,
	} {
		result.Issues = append(result.Issues,
			missing(cat, families[cat], allowed(report, cat))...)
	}

	// Font sizes and z-indices deduct at warning weight.
	for _, cat := range []string{domain.CategoryFontSizes, domain.CategoryZIndices} {
		result.Warnings = append(result.Warnings,
			missing(cat, families[cat], allowed(report, cat))...)
	}

	if f := checkNaming(report, filename); f != nil {
		result.Warnings = append(result.Warnings, *f)
	}
	if f := checkImports(report, content); f != nil {
		result.Suggestions = append(result.Suggestions, *f)
	}
	result.Suggestions = append(result.Suggestions, checkShape(report, content, filename)...)

	result.Score = domain.ComputeScore(c.weights,
		len(result.Issues), len(result.Warnings), len(result.Suggestions))
	result.Compliant = len(result.Issues) == 0

	return result
}

// candidateFamilies extracts every token family from the candidate content,
// deduplicated in discovery order.
func candidateFamilies(content string) map[string][]string {
	sets := map[string]*domain.OrderedSet{
		domain.CategoryColors:    domain.NewOrderedSet(),
		domain.CategoryShadows:   domain.NewOrderedSet(),
		domain.CategoryRadii:     domain.NewOrderedSet(),
		domain.CategorySpacing:   domain.NewOrderedSet(),
		domain.CategoryFontSizes: domain.NewOrderedSet(),
		domain.CategoryZIndices:  domain.NewOrderedSet(),
	}

	sets[domain.CategoryColors].AddAll(extract.Colors(content))
	sets[domain.CategoryShadows].AddAll(extract.Shadows(content))
	sets[domain.CategoryRadii].AddAll(extract.Radii(content))
	sets[domain.CategorySpacing].AddAll(extract.Spacing(content))
	sets[domain.CategoryFontSizes].AddAll(extract.FontSizes(content))
	sets[domain.CategoryZIndices].AddAll(extract.ZIndices(content))

	for _, decl := range extract.Declarations(content) {
		if cat := extract.CategorizeVar(decl.Name); cat != "" {
			sets[cat].Add(decl.Value)
		}
	}
	for _, name := range extract.Usages(content) {
		if cat := extract.CategorizeVar(name); cat != "" {
			sets[cat].Add("var(" + name + ")")
		}
	}
	for cat, classes := range extract.UtilityClasses(content) {
		sets[cat].AddAll(classes)
	}

	out := make(map[string][]string, len(sets))
	for cat, set := range sets {
		out[cat] = set.Values()
	}
	return out
}

func allowed(report *domain.PatternReport, category string) map[string]bool {
	var values []string
	switch category {
	case domain.CategoryColors:
		values = report.Colors
	case domain.CategoryShadows:
		values = report.Shadows
	case domain.CategoryRadii:
		values = report.Radii
	case domain.CategorySpacing:
		values = report.Spacing
	case domain.CategoryFontSizes:
		values = report.FontSizes
	case domain.CategoryZIndices:
		values = report.ZIndices
	}

	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func missing(category string, candidates []string, allowed map[string]bool) []domain.Finding {
	var findings []domain.Finding
	for _, v := range candidates {
		if allowed[v] {
			continue
		}
		findings = append(findings, domain.Finding{
			Category: category,
			Value:    v,
			Message:  fmt.Sprintf("hardcoded %s value %q does not match any project token", familyLabel(category), v),
		})
	}
	return findings
}

func checkNaming(report *domain.PatternReport, filename string) *domain.Finding {
	if report.NamingStyle == "" {
		return nil
	}

	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	style := extract.ClassifyStem(stem)
	if style == "" || style == report.NamingStyle {
		return nil
	}

	suggestion := extract.ConvertStem(stem, report.NamingStyle)
	return &domain.Finding{
		Category: domain.CategoryNaming,
		Value:    stem,
		Message: fmt.Sprintf("file uses %s but the project standard is %s (e.g. %q)",
			style, report.NamingStyle, suggestion+filepath.Ext(filename)),
	}
}

func checkImports(report *domain.PatternReport, content string) *domain.Finding {
	if report.ImportStyle == "" {
		return nil
	}

	style := extract.DominantImportStyle(extract.Imports(content))
	if style == "" || style == report.ImportStyle {
		return nil
	}

	msg := "project prefers relative imports over path aliases"
	if report.ImportStyle == domain.ImportAliased {
		msg = "project prefers path aliases (@/) over relative imports"
	}
	return &domain.Finding{Category: domain.CategoryImports, Message: msg}
}

// shapeThreshold is the fraction of scanned components that must share a
// trait before its absence in the candidate is worth a suggestion.
const shapeThreshold = 0.7

func checkShape(report *domain.PatternReport, content, filename string) []domain.Finding {
	conv := report.ComponentConventions
	if conv.Total == 0 {
		return nil
	}

	shape := extract.Shape(content, filepath.Ext(filename))
	var findings []domain.Finding

	add := func(msg string) {
		findings = append(findings, domain.Finding{Category: domain.CategoryShape, Message: msg})
	}

	if conv.Fraction(conv.Typed) > shapeThreshold && !shape.Typed {
		add("most components use TypeScript; consider a .tsx/.ts extension")
	}
	if conv.Fraction(conv.PropsDeclared) > shapeThreshold && !shape.PropsDeclared {
		add("most components declare a Props interface/type; consider adding one")
	}
	if conv.Fraction(conv.DefaultExport) > shapeThreshold && !shape.DefaultExport {
		add("most components use a default export")
	}

	return findings
}

func familyLabel(category string) string {
	switch category {
	case domain.CategoryColors:
		return "color"
	case domain.CategoryShadows:
		return "box-shadow"
	case domain.CategoryRadii:
		return "border-radius"
	case domain.CategorySpacing:
		return "spacing"
	case domain.CategoryFontSizes:
		return "font-size"
	case domain.CategoryZIndices:
		return "z-index"
	default:
		return category
	}
}
