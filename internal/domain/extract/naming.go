package extract

import (
	"strings"
	"unicode"

	"github.com/fatih/camelcase"

	"github.com/patternlens/patternlens/internal/domain"
)

// ClassifyStem classifies a filename stem into one of the four naming styles,
// or "" when the stem is ambiguous (a single all-lowercase word fits several
// conventions and does not vote).
func ClassifyStem(stem string) string {
	if stem == "" {
		return ""
	}

	runes := []rune(stem)
	hasHyphen := strings.ContainsRune(stem, '-')
	hasUnderscore := strings.ContainsRune(stem, '_')
	hasUpper := strings.ContainsFunc(stem, unicode.IsUpper)

	switch {
	case unicode.IsUpper(runes[0]) && !hasHyphen && !hasUnderscore:
		return domain.NamingPascalCase
	case hasHyphen && !hasUpper && !hasUnderscore:
		return domain.NamingKebabCase
	case hasUnderscore && !hasUpper && !hasHyphen:
		return domain.NamingSnakeCase
	case unicode.IsLower(runes[0]) && hasUpper && !hasHyphen && !hasUnderscore:
		return domain.NamingCamelCase
	default:
		return ""
	}
}

// DominantStyle returns the majority naming style over the given stems, in
// first-seen order for tie-breaks. Returns "" when no stem votes.
func DominantStyle(stems []string) string {
	counts := make(map[string]int)
	var order []string

	for _, stem := range stems {
		style := ClassifyStem(stem)
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

// SplitWords breaks a stem into its lowercase word parts regardless of the
// convention it was written in.
func SplitWords(stem string) []string {
	var parts []string
	for _, chunk := range strings.FieldsFunc(stem, func(r rune) bool {
		return r == '-' || r == '_'
	}) {
		for _, w := range camelcase.Split(chunk) {
			parts = append(parts, strings.ToLower(w))
		}
	}
	return parts
}

// ConvertStem rewrites a stem into the target naming style, used to build
// rename suggestions in naming findings.
func ConvertStem(stem, style string) string {
	words := SplitWords(stem)
	if len(words) == 0 {
		return stem
	}

	switch style {
	case domain.NamingKebabCase:
		return strings.Join(words, "-")
	case domain.NamingSnakeCase:
		return strings.Join(words, "_")
	case domain.NamingPascalCase:
		var b strings.Builder
		for _, w := range words {
			b.WriteString(title(w))
		}
		return b.String()
	case domain.NamingCamelCase:
		var b strings.Builder
		b.WriteString(words[0])
		for _, w := range words[1:] {
			b.WriteString(title(w))
		}
		return b.String()
	default:
		return stem
	}
}

func title(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}
