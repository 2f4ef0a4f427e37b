package extract

import "strings"

// componentExts are the file extensions treated as component sources.
var componentExts = map[string]bool{
	".tsx":    true,
	".jsx":    true,
	".vue":    true,
	".svelte": true,
}

// typedExts are extensions of typed-language component files.
var typedExts = map[string]bool{
	".ts":  true,
	".tsx": true,
}

var hookMarkers = []string{"useState", "useEffect", "useCallback", "useMemo", "useRef", "useContext"}

// IsComponentExt reports whether ext names a component file.
func IsComponentExt(ext string) bool { return componentExts[ext] }

// ComponentShape captures the structural traits of one component file.
type ComponentShape struct {
	Typed         bool
	PropsDeclared bool
	DefaultExport bool
	NamedExport   bool
	UsesHooks     bool
}

// Shape inspects a component file's content and extension.
func Shape(content, ext string) ComponentShape {
	s := ComponentShape{
		Typed:         typedExts[ext],
		PropsDeclared: strings.Contains(content, "interface Props") || strings.Contains(content, "type Props"),
		DefaultExport: strings.Contains(content, "export default"),
		NamedExport:   strings.Contains(content, "export {") || strings.Contains(content, "export const") || strings.Contains(content, "export function"),
	}
	for _, hook := range hookMarkers {
		if strings.Contains(content, hook) {
			s.UsesHooks = true
			break
		}
	}
	return s
}
