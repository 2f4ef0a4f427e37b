package extract

import (
	"regexp"
	"strings"

	"github.com/patternlens/patternlens/internal/domain"
)

var importRe = regexp.MustCompile(`(?m)^\s*import\s+[^;\n]*?from\s+['"]([^'"]+)['"]`)

// Imports extracts the module specifiers of ES import statements in
// document order.
func Imports(content string) []string {
	var out []string
	for _, m := range importRe.FindAllStringSubmatch(content, -1) {
		out = append(out, m[1])
	}
	return out
}

// ClassifyImport maps a module specifier to an import style. Bare package
// imports ("react") belong to neither style and do not vote.
func ClassifyImport(spec string) string {
	switch {
	case strings.HasPrefix(spec, "@/"):
		return domain.ImportAliased
	case strings.HasPrefix(spec, "."):
		return domain.ImportRelative
	default:
		return ""
	}
}

// DominantImportStyle returns the majority import style over the given
// specifiers, ties broken by first occurrence. Returns "" when no specifier
// votes.
func DominantImportStyle(specs []string) string {
	counts := make(map[string]int)
	var order []string

	for _, spec := range specs {
		style := ClassifyImport(spec)
		if style == "" {
			continue
		}
		if counts[style] == 0 {
			order = append(order, style)
		}
		counts[style]++
	}

	best := ""
	for _, style := range order {
		if best == "" || counts[style] > counts[best] {
			best = style
		}
	}
	return best
}
