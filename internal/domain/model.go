package domain

// PatternReport is the persisted result of one project scan. It is the
// baseline against which later compliance checks are measured. All value sets
// are literal strings in discovery order; two values that render identically
// but differ textually ("#fff" vs "#FFFFFF") are distinct entries by design,
// since compliance checks use the same non-normalized comparison.
type PatternReport struct {
	Colors    []string `json:"colors"`
	Shadows   []string `json:"shadows"`
	Radii     []string `json:"radii"`
	Spacing   []string `json:"spacing"`
	FontSizes []string `json:"fontSizes"`
	ZIndices  []string `json:"zIndices"`

	NamingStyle string `json:"namingStyle"`
	ImportStyle string `json:"importStyle"`

	ComponentConventions ComponentConventions `json:"componentConventions"`
	FolderPaths          []string             `json:"folderPaths"`

	// Notes records non-fatal scan events (unreadable files, size skips).
	// Diagnostic output only, not part of the persisted artifact.
	Notes []string `json:"-"`
}

// Empty reports whether the scan found no token values and no components.
func (r *PatternReport) Empty() bool {
	return r.TokenCount() == 0 && r.ComponentConventions.Total == 0
}

// TokenCount returns the total number of distinct token values in the report.
func (r *PatternReport) TokenCount() int {
	return len(r.Colors) + len(r.Shadows) + len(r.Radii) +
		len(r.Spacing) + len(r.FontSizes) + len(r.ZIndices)
}

// ComponentConventions aggregates shape statistics over scanned component files.
type ComponentConventions struct {
	Total         int `json:"total"`
	Typed         int `json:"typed"`
	PropsDeclared int `json:"propsDeclared"`
	DefaultExport int `json:"defaultExport"`
	NamedExport   int `json:"namedExport"`
	UsesHooks     int `json:"usesHooks"`
}

// Fraction returns count/Total, or 0 for an empty sample.
func (c ComponentConventions) Fraction(count int) float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(count) / float64(c.Total)
}

// Naming styles inferred for component filenames.
const (
	NamingPascalCase = "PascalCase"
	NamingKebabCase  = "kebab-case"
	NamingSnakeCase  = "snake_case"
	NamingCamelCase  = "camelCase"
)

// Import styles inferred from import statements.
const (
	ImportAliased  = "aliased"
	ImportRelative = "relative"
)

// ComplianceResult is the outcome of checking one candidate file against a
// PatternReport. Findings keep extractor order: colors, shadows, radii,
// spacing, font sizes, z-indices, naming, imports, component shape.
type ComplianceResult struct {
	File        string    `json:"file"`
	Score       int       `json:"score"`
	Compliant   bool      `json:"compliant"`
	Issues      []Finding `json:"issues"`
	Warnings    []Finding `json:"warnings"`
	Suggestions []Finding `json:"suggestions"`
}

// Finding describes a single deviation from the project's observed patterns.
type Finding struct {
	Category string `json:"category"`
	Value    string `json:"value,omitempty"`
	Message  string `json:"message"`
}

// Finding categories, in extractor order.
const (
	CategoryColors    = "colors"
	CategoryShadows   = "shadows"
	CategoryRadii     = "radii"
	CategorySpacing   = "spacing"
	CategoryFontSizes = "fontSizes"
	CategoryZIndices  = "zIndices"
	CategoryNaming    = "naming"
	CategoryImports   = "imports"
	CategoryShape     = "component_shape"
)

// DeductionWeights holds the per-finding score deductions.
type DeductionWeights struct {
	Issue      int `yaml:"issue"      json:"issue"`
	Warning    int `yaml:"warning"    json:"warning"`
	Suggestion int `yaml:"suggestion" json:"suggestion"`
}

// DefaultWeights returns the standard deduction weights.
func DefaultWeights() DeductionWeights {
	return DeductionWeights{Issue: 20, Warning: 10, Suggestion: 5}
}

// ComputeScore applies deductions to a base of 100, clamped to [0, 100].
func ComputeScore(w DeductionWeights, issues, warnings, suggestions int) int {
	score := 100 - issues*w.Issue - warnings*w.Warning - suggestions*w.Suggestion
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// GradeFor maps a compliance score to a letter grade.
func GradeFor(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

// CheckEntry is one line of compliance-check history for a project.
type CheckEntry struct {
	Timestamp  string `json:"timestamp"`
	CommitHash string `json:"commit_hash,omitempty"`
	File       string `json:"file"`
	Score      int    `json:"score"`
	Grade      string `json:"grade"`
}
