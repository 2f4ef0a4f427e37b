package compliance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patternlens/patternlens/internal/domain"
	"github.com/patternlens/patternlens/internal/domain/compliance"
)

func baselineReport() *domain.PatternReport {
	return &domain.PatternReport{
		Colors:      []string{"#3b82f6", "#ffffff", "var(--color-primary)"},
		Shadows:     []string{"0 1px 3px rgba(0, 0, 0, 0.1)", "shadow-md"},
		Radii:       []string{"8px", "rounded-lg"},
		Spacing:     []string{"8px", "16px", "p-4"},
		FontSizes:   []string{"1rem", "text-sm"},
		ZIndices:    []string{"50"},
		NamingStyle: domain.NamingKebabCase,
		ImportStyle: domain.ImportAliased,
		// only the TypeScript trait clears the 0.7 shape threshold
		ComponentConventions: domain.ComponentConventions{
			Total: 10, Typed: 9, PropsDeclared: 6, DefaultExport: 6, NamedExport: 2, UsesHooks: 6,
		},
		FolderPaths: []string{"src/components"},
	}
}

func newChecker() *compliance.Checker {
	return compliance.NewChecker(domain.DefaultWeights())
}

const compliantComponent = `import { useState } from 'react'
import { Avatar } from '@/components/avatar'

interface Props {
  name: string
}

export default function UserBadge({ name }: Props) {
  const [open, setOpen] = useState(false)
  return (
    <div className="p-4 shadow-md rounded-lg text-sm" style={{ color: '#3b82f6' }}>
      {name}
    </div>
  )
}
`

func TestCheck_FullyCompliantScoresHundred(t *testing.T) {
	result := newChecker().Check(baselineReport(), compliantComponent, "src/components/user-badge.tsx")

	assert.Equal(t, 100, result.Score)
	assert.True(t, result.Compliant)
	assert.Empty(t, result.Issues)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.Suggestions)
}

func TestCheck_IsDeterministic(t *testing.T) {
	c := newChecker()
	first := c.Check(baselineReport(), compliantComponent, "src/components/user-badge.tsx")
	second := c.Check(baselineReport(), compliantComponent, "src/components/user-badge.tsx")
	assert.Equal(t, first, second)
}

func TestCheck_UnknownColorIsBlockingIssue(t *testing.T) {
	content := `export default function Card() {
  return <div style={{ color: '#ff00ff' }} className="p-4" />
}
`
	result := newChecker().Check(baselineReport(), content, "src/components/card-box.tsx")

	require.Len(t, result.Issues, 1)
	assert.Equal(t, domain.CategoryColors, result.Issues[0].Category)
	assert.Equal(t, "#ff00ff", result.Issues[0].Value)
	assert.Equal(t, 80, result.Score)
	assert.False(t, result.Compliant)
}

func TestCheck_EachUnknownColorDeductsTwenty(t *testing.T) {
	one := `const a = { color: '#ff00ff' }
export default function X() { return null }
`
	two := `const a = { color: '#ff00ff' }
const b = { color: '#00ff00' }
export default function X() { return null }
`
	c := newChecker()
	r1 := c.Check(baselineReport(), one, "src/components/box-a.tsx")
	r2 := c.Check(baselineReport(), two, "src/components/box-a.tsx")

	assert.Equal(t, 80, r1.Score)
	assert.Equal(t, 60, r2.Score)
	assert.Equal(t, r1.Score-20, r2.Score)
}

func TestCheck_DuplicateLiteralCountsOnce(t *testing.T) {
	content := `const a = { color: '#ff00ff' }
const b = { color: '#ff00ff' }
export default function X() { return null }
`
	result := newChecker().Check(baselineReport(), content, "src/components/box-a.tsx")

	require.Len(t, result.Issues, 1)
	assert.Equal(t, 80, result.Score)
}

func TestCheck_ScoreFloorsAtZero(t *testing.T) {
	content := `const s = {
  color: '#111111',
  background: '#222222',
  fill: '#333333',
  stroke: '#444444',
  borderRadius: '99px',
  padding: '3px',
}
export default function X() { return null }
`
	result := newChecker().Check(baselineReport(), content, "src/components/box-a.tsx")

	assert.GreaterOrEqual(t, len(result.Issues), 5)
	assert.Equal(t, 0, result.Score)
}

func TestCheck_FontSizeAndZIndexAreWarnings(t *testing.T) {
	content := `const s = { fontSize: '13px', zIndex: 9999 }
export default function X() { return null }
`
	result := newChecker().Check(baselineReport(), content, "src/components/box-a.tsx")

	assert.Empty(t, result.Issues)
	require.Len(t, result.Warnings, 2)
	assert.Equal(t, domain.CategoryFontSizes, result.Warnings[0].Category)
	assert.Equal(t, domain.CategoryZIndices, result.Warnings[1].Category)
	assert.Equal(t, 80, result.Score)
	assert.True(t, result.Compliant)
}

func TestCheck_NamingMismatchWarnsWithRename(t *testing.T) {
	content := "export default function UserProfile() { return null }\n"
	result := newChecker().Check(baselineReport(), content, "src/components/UserProfile.tsx")

	require.Len(t, result.Warnings, 1)
	w := result.Warnings[0]
	assert.Equal(t, domain.CategoryNaming, w.Category)
	assert.Equal(t, "UserProfile", w.Value)
	assert.Contains(t, w.Message, domain.NamingPascalCase)
	assert.Contains(t, w.Message, domain.NamingKebabCase)
	assert.Contains(t, w.Message, "user-profile.tsx")
	assert.Equal(t, 90, result.Score)
}

func TestCheck_AmbiguousFilenameDoesNotWarn(t *testing.T) {
	content := "export default function Index() { return null }\n"
	result := newChecker().Check(baselineReport(), content, "src/pages/index.tsx")

	assert.Empty(t, result.Warnings)
}

func TestCheck_NoNamingStandardIsVacuous(t *testing.T) {
	report := baselineReport()
	report.NamingStyle = ""

	result := newChecker().Check(report, "export default function X() { return null }\n", "src/components/UserProfile.tsx")
	assert.Empty(t, result.Warnings)
}

func TestCheck_ImportStyleMismatchSuggests(t *testing.T) {
	content := `import { Avatar } from '../avatar'
import { helper } from '../../lib/helper'

export default function X() { return null }
`
	result := newChecker().Check(baselineReport(), content, "src/components/box-a.tsx")

	require.Len(t, result.Suggestions, 1)
	assert.Equal(t, domain.CategoryImports, result.Suggestions[0].Category)
	assert.Contains(t, result.Suggestions[0].Message, "path aliases")
	assert.Equal(t, 95, result.Score)
}

func TestCheck_ShapeDivergenceSuggests(t *testing.T) {
	report := baselineReport()
	report.ComponentConventions = domain.ComponentConventions{
		Total: 10, Typed: 9, PropsDeclared: 8, DefaultExport: 9,
	}

	content := `export const Thing = () => null
`
	result := newChecker().Check(report, content, "src/components/thing-box.jsx")

	// typed (9/10), props declared (8/10) and default export (9/10) all
	// clear the 0.7 threshold and are all absent here
	require.Len(t, result.Suggestions, 3)
	for _, f := range result.Suggestions {
		assert.Equal(t, domain.CategoryShape, f.Category)
	}
	assert.Equal(t, 85, result.Score)
}

func TestCheck_ShapeBelowThresholdIsQuiet(t *testing.T) {
	report := baselineReport()
	report.ComponentConventions = domain.ComponentConventions{
		Total: 10, Typed: 5, PropsDeclared: 5, DefaultExport: 5,
	}

	result := newChecker().Check(report, "export const Thing = () => null\n", "src/components/thing-box.jsx")
	assert.Empty(t, result.Suggestions)
}

func TestCheck_EmptyReportOnlyShapeless(t *testing.T) {
	empty := &domain.PatternReport{
		Colors:    []string{},
		Shadows:   []string{},
		Radii:     []string{},
		Spacing:   []string{},
		FontSizes: []string{},
		ZIndices:  []string{},
	}
	content := `export default function X() {
  return <div style={{ color: '#123456', padding: '7px' }} />
}
`
	result := newChecker().Check(empty, content, "src/components/box-a.tsx")

	// token families found in the candidate but absent from an empty
	// baseline still fail membership; conventions are vacuous
	assert.Len(t, result.Issues, 2)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.Suggestions)
}

func TestCheck_FindingOrderIsStable(t *testing.T) {
	content := `const s = { color: '#ff00ff', boxShadow: 'none', padding: '3px', fontSize: '13px' }
export default function UserProfile() { return null }
`
	result := newChecker().Check(baselineReport(), content, "src/components/UserProfile.tsx")

	require.GreaterOrEqual(t, len(result.Issues), 2)
	assert.Equal(t, domain.CategoryColors, result.Issues[0].Category)
	assert.Equal(t, domain.CategorySpacing, result.Issues[len(result.Issues)-1].Category)

	require.Len(t, result.Warnings, 2)
	assert.Equal(t, domain.CategoryFontSizes, result.Warnings[0].Category)
	assert.Equal(t, domain.CategoryNaming, result.Warnings[1].Category)
}

func TestCheck_CustomWeights(t *testing.T) {
	c := compliance.NewChecker(domain.DeductionWeights{Issue: 50, Warning: 10, Suggestion: 5})
	content := `const a = { color: '#ff00ff' }
export default function X() { return null }
`
	result := c.Check(baselineReport(), content, "src/components/box-a.tsx")
	assert.Equal(t, 50, result.Score)
}
