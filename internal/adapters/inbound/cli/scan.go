package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/patternlens/patternlens/internal/adapters/outbound/config"
	"github.com/patternlens/patternlens/internal/adapters/outbound/gitinfo"
	"github.com/patternlens/patternlens/internal/adapters/outbound/scanner"
	"github.com/patternlens/patternlens/internal/adapters/outbound/store"
	"github.com/patternlens/patternlens/internal/adapters/outbound/tui"
	"github.com/patternlens/patternlens/internal/application"
)

const defaultArtifact = "project_patterns.json"

func newScanCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "scan <project_path> [output_path]",
		Short: "Scan a frontend project and write its pattern report",
		Long:  "Walk a frontend project tree, extract design tokens and conventions, and write the pattern report artifact (default " + defaultArtifact + ").",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			outputPath := defaultArtifact
			if len(args) > 1 {
				outputPath = args[1]
			}

			svc := application.NewScanService(scanner.New(), store.New(), config.New())
			report, err := svc.ScanProject(projectPath, outputPath)
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			var hash string
			gi := gitinfo.New()
			if h, err := gi.CommitHash(projectPath); err == nil {
				hash = h
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderScanSummary(report, outputPath, hash))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the pattern report as JSON")

	return cmd
}
