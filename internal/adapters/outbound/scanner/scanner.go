// Package scanner implements domain.ProjectScanner by walking the filesystem
// and running every pattern-family extractor over each qualifying file.
package scanner

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/patternlens/patternlens/internal/domain"
	"github.com/patternlens/patternlens/internal/domain/extract"
)

var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"build":        true,
	".next":        true,
	"out":          true,
	"coverage":     true,
	"vendor":       true,
}

// allowedExts is the fixed allow-list of frontend source extensions.
var allowedExts = map[string]bool{
	".css": true, ".scss": true, ".sass": true, ".less": true,
	".js": true, ".jsx": true, ".ts": true, ".tsx": true,
	".vue": true, ".svelte": true, ".mjs": true, ".cjs": true,
}

// DefaultMaxFileSize is the per-file read cap; larger files are skipped.
const DefaultMaxFileSize = 1 << 20 // 1 MiB

// FileScanner walks a project tree and accumulates a PatternReport.
// filepath.WalkDir visits entries in lexical order per directory, which makes
// discovery order (and therefore the serialized artifact) deterministic for
// an unchanged tree.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Scan walks projectPath and produces one PatternReport. It fails only when
// the root path itself is invalid; unreadable, oversized, or binary files are
// skipped with a note on the report.
func (s *FileScanner) Scan(projectPath string, cfg domain.ProjectConfig) (*domain.PatternReport, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, &domain.PathError{Path: projectPath, Err: err}
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return nil, &domain.PathError{Path: projectPath, Err: err}
	}
	if !info.IsDir() {
		return nil, &domain.PathError{Path: projectPath, Err: fmt.Errorf("not a directory")}
	}

	extraSkip := make(map[string]bool, len(cfg.ExcludePaths))
	for _, p := range cfg.ExcludePaths {
		extraSkip[strings.TrimSuffix(p, "/")] = true
	}

	exts := make(map[string]bool, len(allowedExts)+len(cfg.ExtraExtensions))
	for ext := range allowedExts {
		exts[ext] = true
	}
	for _, ext := range cfg.ExtraExtensions {
		exts[ext] = true
	}

	maxSize := cfg.MaxFileSize
	if maxSize == 0 {
		maxSize = DefaultMaxFileSize
	}

	acc := newAccumulator()

	walkErr := filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if path == absPath {
				return err
			}
			acc.note("skipped %s: %v", path, err)
			return nil
		}

		if d.IsDir() {
			if path != absPath && (skipDirs[d.Name()] || extraSkip[d.Name()]) {
				return filepath.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(d.Name()))
		if !exts[ext] {
			return nil
		}

		relPath, _ := filepath.Rel(absPath, path)
		relPath = filepath.ToSlash(relPath)

		fi, err := d.Info()
		if err != nil {
			acc.note("skipped %s: %v", relPath, err)
			return nil
		}
		if fi.Size() > maxSize {
			acc.note("skipped %s: exceeds size cap", relPath)
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			acc.note("skipped %s: %v", relPath, err)
			return nil
		}
		if isBinary(data) {
			acc.note("skipped %s: binary content", relPath)
			return nil
		}

		acc.addFile(relPath, ext, string(data))
		return nil
	})
	if walkErr != nil {
		return nil, &domain.PathError{Path: projectPath, Err: walkErr}
	}

	return acc.report(), nil
}

// isBinary sniffs for a NUL byte in the leading chunk.
func isBinary(data []byte) bool {
	const sniffLen = 8192
	if len(data) > sniffLen {
		data = data[:sniffLen]
	}
	return bytes.IndexByte(data, 0) >= 0
}

// accumulator unions per-file extractor output in discovery order.
type accumulator struct {
	sets map[string]*domain.OrderedSet

	declarations []extract.Declaration
	usages       []string

	componentStems []string
	folderPaths    *domain.OrderedSet
	conventions    domain.ComponentConventions

	imports []string
	notes   []string
	files   int
}

func newAccumulator() *accumulator {
	return &accumulator{
		sets: map[string]*domain.OrderedSet{
			domain.CategoryColors:    domain.NewOrderedSet(),
			domain.CategoryShadows:   domain.NewOrderedSet(),
			domain.CategoryRadii:     domain.NewOrderedSet(),
			domain.CategorySpacing:   domain.NewOrderedSet(),
			domain.CategoryFontSizes: domain.NewOrderedSet(),
			domain.CategoryZIndices:  domain.NewOrderedSet(),
		},
		folderPaths: domain.NewOrderedSet(),
	}
}

func (a *accumulator) note(format string, args ...any) {
	a.notes = append(a.notes, fmt.Sprintf(format, args...))
}

func (a *accumulator) addFile(relPath, ext, content string) {
	a.files++

	a.sets[domain.CategoryColors].AddAll(extract.Colors(content))
	a.sets[domain.CategoryShadows].AddAll(extract.Shadows(content))
	a.sets[domain.CategoryRadii].AddAll(extract.Radii(content))
	a.sets[domain.CategorySpacing].AddAll(extract.Spacing(content))
	a.sets[domain.CategoryFontSizes].AddAll(extract.FontSizes(content))
	a.sets[domain.CategoryZIndices].AddAll(extract.ZIndices(content))

	a.declarations = append(a.declarations, extract.Declarations(content)...)
	a.usages = append(a.usages, extract.Usages(content)...)

	for cat, classes := range extract.UtilityClasses(content) {
		a.sets[cat].AddAll(classes)
	}

	a.imports = append(a.imports, extract.Imports(content)...)

	if extract.IsComponentExt(ext) {
		stem := strings.TrimSuffix(filepath.Base(relPath), ext)
		a.componentStems = append(a.componentStems, stem)

		dir := filepath.ToSlash(filepath.Dir(relPath))
		a.folderPaths.Add(dir)

		shape := extract.Shape(content, ext)
		a.conventions.Total++
		if shape.Typed {
			a.conventions.Typed++
		}
		if shape.PropsDeclared {
			a.conventions.PropsDeclared++
		}
		if shape.DefaultExport {
			a.conventions.DefaultExport++
		}
		if shape.NamedExport {
			a.conventions.NamedExport++
		}
		if shape.UsesHooks {
			a.conventions.UsesHooks++
		}
	}
}

// report finishes the scan: the custom-property second pass correlates
// declarations and usages collected across all files, then the aggregate
// report is assembled.
func (a *accumulator) report() *domain.PatternReport {
	// First declaration of a name wins; traversal order is deterministic.
	declCategory := make(map[string]string)
	for _, decl := range a.declarations {
		cat := extract.CategorizeVar(decl.Name)
		if cat == "" {
			cat = categorizeValue(decl.Value)
		}
		if cat == "" {
			continue
		}
		if _, seen := declCategory[decl.Name]; !seen {
			declCategory[decl.Name] = cat
		}
		a.sets[cat].Add(decl.Value)
	}

	// A usage is recorded as the variable reference, not its resolved value.
	// The declaration pass above determines the category when the name alone
	// does not imply one.
	for _, name := range a.usages {
		cat := extract.CategorizeVar(name)
		if cat == "" {
			cat = declCategory[name]
		}
		if cat == "" {
			continue
		}
		a.sets[cat].Add("var(" + name + ")")
	}

	return &domain.PatternReport{
		Colors:               a.sets[domain.CategoryColors].Values(),
		Shadows:              a.sets[domain.CategoryShadows].Values(),
		Radii:                a.sets[domain.CategoryRadii].Values(),
		Spacing:              a.sets[domain.CategorySpacing].Values(),
		FontSizes:            a.sets[domain.CategoryFontSizes].Values(),
		ZIndices:             a.sets[domain.CategoryZIndices].Values(),
		NamingStyle:          extract.DominantStyle(a.componentStems),
		ImportStyle:          extract.DominantImportStyle(a.imports),
		ComponentConventions: a.conventions,
		FolderPaths:          a.folderPaths.Values(),
		Notes:                a.notes,
	}
}

// categorizeValue infers a category from a value's shape when the variable
// name implies none. Only colors are recognizable by value alone.
func categorizeValue(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if strings.HasPrefix(v, "#") || strings.HasPrefix(v, "rgb(") ||
		strings.HasPrefix(v, "rgba(") || strings.HasPrefix(v, "hsl(") ||
		strings.HasPrefix(v, "hsla(") {
		return domain.CategoryColors
	}
	return ""
}
