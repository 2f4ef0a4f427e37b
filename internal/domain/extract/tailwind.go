package extract

import (
	"regexp"
	"strings"

	"github.com/patternlens/patternlens/internal/domain"
)

// utilityPrefixes maps Tailwind-style utility class prefixes to token
// categories. Classes are recorded by name: utility frameworks resolve the
// underlying value separately, so the class name itself is the token.
var utilityPrefixes = map[string]string{
	"shadow":  domain.CategoryShadows,
	"rounded": domain.CategoryRadii,
	"p":       domain.CategorySpacing,
	"px":      domain.CategorySpacing,
	"py":      domain.CategorySpacing,
	"pt":      domain.CategorySpacing,
	"pr":      domain.CategorySpacing,
	"pb":      domain.CategorySpacing,
	"pl":      domain.CategorySpacing,
	"m":       domain.CategorySpacing,
	"mx":      domain.CategorySpacing,
	"my":      domain.CategorySpacing,
	"mt":      domain.CategorySpacing,
	"mr":      domain.CategorySpacing,
	"mb":      domain.CategorySpacing,
	"ml":      domain.CategorySpacing,
	"gap":     domain.CategorySpacing,
	"space-x": domain.CategorySpacing,
	"space-y": domain.CategorySpacing,
	"text":    domain.CategoryFontSizes,
	"z":       domain.CategoryZIndices,
}

// textSizes restricts the "text" prefix to size utilities; text-red-500 is a
// color utility and is out of scope for the font-size family.
var textSizes = map[string]bool{
	"xs": true, "sm": true, "base": true, "lg": true, "xl": true,
	"2xl": true, "3xl": true, "4xl": true, "5xl": true, "6xl": true,
	"7xl": true, "8xl": true, "9xl": true,
}

var (
	classAttrRe = regexp.MustCompile(`(?:className|class)\s*[=:]\s*[{]?["'` + "`" + `]([^"'` + "`" + `]+)`)
	utilityRe   = regexp.MustCompile(`^[a-z][a-z-]*-[a-z0-9./\[\]]+$`)
)

// UtilityClasses scans class/className attributes for utility classes that
// imply a known token, grouped by category.
func UtilityClasses(content string) map[string][]string {
	out := make(map[string][]string)
	for _, m := range classAttrRe.FindAllStringSubmatch(content, -1) {
		for _, class := range strings.Fields(m[1]) {
			if cat := UtilityCategory(class); cat != "" {
				out[cat] = append(out[cat], class)
			}
		}
	}
	return out
}

// UtilityCategory returns the token category implied by a utility class name,
// or "" for classes outside the tracked families.
func UtilityCategory(class string) string {
	if !utilityRe.MatchString(class) {
		return ""
	}

	idx := strings.LastIndex(class, "-")
	prefix, suffix := class[:idx], class[idx+1:]

	cat, ok := utilityPrefixes[prefix]
	if !ok {
		return ""
	}
	if prefix == "text" && !textSizes[suffix] {
		return ""
	}
	return cat
}
