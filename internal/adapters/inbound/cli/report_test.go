package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patternlens/patternlens/internal/adapters/inbound/cli"
)

func TestReportCommand_WritesMarkdown(t *testing.T) {
	patterns := scanArtifact(t)
	out := filepath.Join(t.TempDir(), "patterns.md")

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"report", patterns, out})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Frontend Project Pattern Analysis")
	assert.Contains(t, buf.String(), out)
}

func TestReportCommand_DefaultsOutputNextToArtifact(t *testing.T) {
	patterns := scanArtifact(t)

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"report", patterns})
	require.NoError(t, cmd.Execute())

	_, err := os.Stat(strings.TrimSuffix(patterns, ".json") + ".md")
	assert.NoError(t, err)
}

func TestReportCommand_Stdout(t *testing.T) {
	patterns := scanArtifact(t)
	out := filepath.Join(t.TempDir(), "patterns.md")

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"report", patterns, out, "--stdout"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "## Design Tokens")
}

func TestReportCommand_MissingArtifactFails(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"report", filepath.Join(t.TempDir(), "nope.json")})
	assert.Error(t, cmd.Execute())
}
