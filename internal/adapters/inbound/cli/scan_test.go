package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patternlens/patternlens/internal/adapters/inbound/cli"
)

const fixtureDir = "../../../../testdata/react-app"

func TestScanCommand_WritesArtifact(t *testing.T) {
	out := filepath.Join(t.TempDir(), "patterns.json")

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"scan", fixtureDir, out})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"colors"`)
	assert.Contains(t, string(data), "#3b82f6")

	assert.Contains(t, buf.String(), "patternlens")
	assert.Contains(t, buf.String(), out)
}

func TestScanCommand_JSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "patterns.json")

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"scan", fixtureDir, out, "--json"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), `"namingStyle": "kebab-case"`)
	assert.Contains(t, buf.String(), `"importStyle": "aliased"`)
}

func TestScanCommand_MissingProjectFails(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"scan", filepath.Join(t.TempDir(), "nope")})
	assert.Error(t, cmd.Execute())
}

func TestScanCommand_RequiresProjectArg(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"scan"})
	assert.Error(t, cmd.Execute())
}
