package scanner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patternlens/patternlens/internal/adapters/outbound/scanner"
	"github.com/patternlens/patternlens/internal/domain"
)

const fixtureDir = "../../../../testdata/react-app"

func scanFixture(t *testing.T) *domain.PatternReport {
	t.Helper()
	report, err := scanner.New().Scan(fixtureDir, domain.DefaultConfig())
	require.NoError(t, err)
	return report
}

func TestFileScanner_CollectsTokenFamilies(t *testing.T) {
	report := scanFixture(t)

	// literals, custom-property values and var() usages all land in colors
	assert.Equal(t,
		[]string{"#3b82f6", "#ffffff", "#1f2937", "var(--color-surface)"},
		report.Colors)

	assert.Contains(t, report.Shadows, "0 1px 3px rgba(0, 0, 0, 0.1)")
	assert.Contains(t, report.Shadows, "shadow-md")
	assert.Contains(t, report.Shadows, "var(--shadow-card)")

	assert.Contains(t, report.Radii, "8px")
	assert.Contains(t, report.Radii, "rounded-lg")

	assert.Contains(t, report.Spacing, "16px")
	assert.Contains(t, report.Spacing, "p-4")
	assert.Contains(t, report.Spacing, "var(--spacing-md)")

	assert.Contains(t, report.FontSizes, "1rem")
	assert.Contains(t, report.FontSizes, "2rem")
	assert.Contains(t, report.FontSizes, "text-sm")

	assert.Contains(t, report.ZIndices, "50")
	assert.Contains(t, report.ZIndices, "z-10")
}

func TestFileScanner_InfersConventions(t *testing.T) {
	report := scanFixture(t)

	assert.Equal(t, domain.NamingKebabCase, report.NamingStyle)
	assert.Equal(t, domain.ImportAliased, report.ImportStyle)

	conv := report.ComponentConventions
	assert.Equal(t, 3, conv.Total)
	assert.Equal(t, 3, conv.Typed)
	assert.Equal(t, 3, conv.PropsDeclared)
	assert.Equal(t, 3, conv.DefaultExport)
	assert.Equal(t, 0, conv.NamedExport)
	assert.Equal(t, 2, conv.UsesHooks)

	assert.Equal(t, []string{"src/components", "src/pages"}, report.FolderPaths)
}

func TestFileScanner_IsDeterministic(t *testing.T) {
	first := scanFixture(t)
	second := scanFixture(t)
	assert.Equal(t, first, second)
}

func TestFileScanner_SkipsNodeModules(t *testing.T) {
	report := scanFixture(t)

	assert.NotContains(t, report.Colors, "#ff0000")
	assert.NotContains(t, report.ZIndices, "9999")
}

func TestFileScanner_EmptyProjectIsValid(t *testing.T) {
	report, err := scanner.New().Scan(t.TempDir(), domain.DefaultConfig())
	require.NoError(t, err)

	assert.True(t, report.Empty())
	assert.NotNil(t, report.Colors)
	assert.Empty(t, report.Colors)
	assert.Equal(t, "", report.NamingStyle)
	assert.Equal(t, "", report.ImportStyle)
}

func TestFileScanner_MissingRootFails(t *testing.T) {
	_, err := scanner.New().Scan(filepath.Join(t.TempDir(), "nope"), domain.DefaultConfig())

	var pathErr *domain.PathError
	require.ErrorAs(t, err, &pathErr)
}

func TestFileScanner_FileRootFails(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.css")
	require.NoError(t, os.WriteFile(file, []byte("a { color: #fff; }"), 0644))

	_, err := scanner.New().Scan(file, domain.DefaultConfig())

	var pathErr *domain.PathError
	require.ErrorAs(t, err, &pathErr)
}

func TestFileScanner_ExcludePathsFromConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "legacy"), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "legacy", "old.css"),
		[]byte("a { color: #bada55; }"), 0644))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "app.css"),
		[]byte("a { color: #3b82f6; }"), 0644))

	cfg := domain.ProjectConfig{ExcludePaths: []string{"legacy"}}
	report, err := scanner.New().Scan(dir, cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"#3b82f6"}, report.Colors)
}

func TestFileScanner_ExtraExtensionsFromConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "page.astro"),
		[]byte("<style>a { color: #bada55; }</style>"), 0644))

	report, err := scanner.New().Scan(dir, domain.DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, report.Colors)

	cfg := domain.ProjectConfig{ExtraExtensions: []string{".astro"}}
	report, err = scanner.New().Scan(dir, cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"#bada55"}, report.Colors)
}

func TestFileScanner_SkipsOversizedFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "big.css"),
		[]byte("a { color: #bada55; } /* padding padding padding */"), 0644))

	cfg := domain.ProjectConfig{MaxFileSize: 10}
	report, err := scanner.New().Scan(dir, cfg)
	require.NoError(t, err)

	assert.Empty(t, report.Colors)
	require.Len(t, report.Notes, 1)
	assert.Contains(t, report.Notes[0], "size cap")
}

func TestFileScanner_SkipsBinaryContent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "blob.css"),
		[]byte{0x00, 0x01, 0x02, 'a'}, 0644))

	report, err := scanner.New().Scan(dir, domain.DefaultConfig())
	require.NoError(t, err)

	assert.True(t, report.Empty())
	require.Len(t, report.Notes, 1)
	assert.Contains(t, report.Notes[0], "binary")
}

func TestFileScanner_DeclarationCategoryCarriesAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	// the name alone implies no category; the declared value does
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "a.css"),
		[]byte(":root { --brand: #bada55; }"), 0644))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "b.css"),
		[]byte(".x { background: var(--brand); }"), 0644))

	report, err := scanner.New().Scan(dir, domain.DefaultConfig())
	require.NoError(t, err)

	assert.Contains(t, report.Colors, "#bada55")
	assert.Contains(t, report.Colors, "var(--brand)")
}
