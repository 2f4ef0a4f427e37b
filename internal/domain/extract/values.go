// Package extract holds the pure pattern-family extractors. Each extractor
// takes file content and returns matched literal values in document order,
// without normalization: compliance checks depend on exact string membership,
// so "#fff" and "#FFFFFF" stay distinct.
package extract

import (
	"regexp"
	"strings"
)

var (
	// Color literals after a color-bearing property. The optional quote
	// admits JSX style objects (style={{color: '#3b82f6'}}).
	colorRe = regexp.MustCompile(`(?i)(?:color|background|bg|border-color|fill|stroke)\s*:\s*['"]?(#[0-9a-fA-F]{3,8}\b|rgba?\([^)]*\)|hsla?\([^)]*\))`)

	shadowRe   = regexp.MustCompile(`(?:box-shadow|boxShadow|shadow)\s*:\s*['"]?([^;{}\n'"]+)`)
	radiusRe   = regexp.MustCompile(`(?:border-radius|borderRadius)\s*:\s*['"]?([^;{}\n'"]+)`)
	spacingRe  = regexp.MustCompile(`(?:padding|margin|gap)\s*:\s*['"]?([^;{}\n'"]+)`)
	fontSizeRe = regexp.MustCompile(`(?:font-size|fontSize)\s*:\s*['"]?([^;{}\n'"]+)`)
	zIndexRe   = regexp.MustCompile(`(?:z-index|zIndex)\s*:\s*['"]?([^;{},\n'"]+)`)
)

// Colors extracts hex and functional color literals.
func Colors(content string) []string {
	return capture(colorRe, content)
}

// Shadows extracts box-shadow value strings.
func Shadows(content string) []string {
	return capture(shadowRe, content)
}

// Radii extracts border-radius value strings.
func Radii(content string) []string {
	return capture(radiusRe, content)
}

// Spacing extracts margin/padding/gap value strings.
func Spacing(content string) []string {
	return capture(spacingRe, content)
}

// FontSizes extracts font-size value strings.
func FontSizes(content string) []string {
	return capture(fontSizeRe, content)
}

// ZIndices extracts z-index value strings.
func ZIndices(content string) []string {
	return capture(zIndexRe, content)
}

func capture(re *regexp.Regexp, content string) []string {
	var out []string
	for _, m := range re.FindAllStringSubmatch(content, -1) {
		v := strings.TrimSpace(m[1])
		if v == "" || strings.HasPrefix(v, "var(") {
			continue // var() usages are handled by the vars extractor
		}
		out = append(out, v)
	}
	return out
}
