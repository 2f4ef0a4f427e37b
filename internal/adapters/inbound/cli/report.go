package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/patternlens/patternlens/internal/adapters/outbound/store"
	"github.com/patternlens/patternlens/internal/application"
)

func newReportCmd() *cobra.Command {
	var stdout bool

	cmd := &cobra.Command{
		Use:   "report <analysis_path> [output_path]",
		Short: "Render a pattern report as a Markdown document",
		Long:  "Load a pattern report artifact and write a human-readable Markdown document (default: the artifact path with a .md extension).",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			analysisPath := args[0]

			outputPath := defaultMarkdownPath(analysisPath)
			if len(args) > 1 {
				outputPath = args[1]
			}

			svc := application.NewReportService(store.New())
			md, err := svc.GenerateMarkdown(analysisPath, outputPath)
			if err != nil {
				return fmt.Errorf("report failed: %w", err)
			}

			if stdout {
				fmt.Fprint(cmd.OutOrStdout(), md)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Markdown report generated: %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&stdout, "stdout", false, "Print the Markdown to standard output as well")

	return cmd
}

func defaultMarkdownPath(analysisPath string) string {
	if strings.HasSuffix(analysisPath, ".json") {
		return strings.TrimSuffix(analysisPath, ".json") + ".md"
	}
	return analysisPath + ".md"
}
