package extract

import (
	"regexp"
	"strings"

	"github.com/patternlens/patternlens/internal/domain"
)

var (
	declRe  = regexp.MustCompile(`(--[\w-]+)\s*:\s*([^;{}\n]+)`)
	usageRe = regexp.MustCompile(`var\(\s*(--[\w-]+)\s*\)`)
)

// Declaration is a CSS custom-property definition (--name: value).
type Declaration struct {
	Name  string
	Value string
}

// Declarations extracts custom-property definitions in document order.
func Declarations(content string) []Declaration {
	var out []Declaration
	for _, m := range declRe.FindAllStringSubmatch(content, -1) {
		out = append(out, Declaration{
			Name:  m[1],
			Value: strings.TrimSpace(m[2]),
		})
	}
	return out
}

// Usages extracts var(--name) references, returning the variable names.
func Usages(content string) []string {
	var out []string
	for _, m := range usageRe.FindAllStringSubmatch(content, -1) {
		out = append(out, m[1])
	}
	return out
}

// CategorizeVar maps a custom-property name to a token category by keyword,
// or "" when the name implies none of the tracked families.
func CategorizeVar(name string) string {
	n := strings.ToLower(name)
	switch {
	case containsAny(n, "color", "bg", "background", "border", "text-", "fill", "stroke"):
		return domain.CategoryColors
	case strings.Contains(n, "shadow"):
		return domain.CategoryShadows
	case strings.Contains(n, "radius") || strings.Contains(n, "rounded"):
		return domain.CategoryRadii
	case containsAny(n, "spacing", "space", "gap", "padding", "margin"):
		return domain.CategorySpacing
	case containsAny(n, "font-size", "text-size", "fs-"):
		return domain.CategoryFontSizes
	case strings.Contains(n, "z-index") || strings.Contains(n, "layer"):
		return domain.CategoryZIndices
	default:
		return ""
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
