package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/patternlens/patternlens/internal/adapters/outbound/config"
	"github.com/patternlens/patternlens/internal/adapters/outbound/gitinfo"
	"github.com/patternlens/patternlens/internal/adapters/outbound/history"
	"github.com/patternlens/patternlens/internal/adapters/outbound/store"
	"github.com/patternlens/patternlens/internal/adapters/outbound/tui"
	"github.com/patternlens/patternlens/internal/application"
)

func newCheckCmd() *cobra.Command {
	var (
		jsonOutput bool
		ciMode     bool
		minScore   int
	)

	cmd := &cobra.Command{
		Use:   "check <patterns_path> <component_path>",
		Short: "Check a component file against the project's pattern report",
		Long:  "Re-extract pattern families from a single component file and score it 0-100 against the token sets and conventions in a previously written pattern report.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			patternsPath, componentPath := args[0], args[1]

			svc := application.NewCheckService(
				store.New(),
				config.New(),
				history.New(),
				gitinfo.New(),
			)

			result, err := svc.CheckFile(patternsPath, componentPath)
			if err != nil {
				return fmt.Errorf("check failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderCompliance(result))
			}

			if ciMode && result.Score < minScore {
				return fmt.Errorf("score %d is below minimum %d", result.Score, minScore)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the compliance result as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if below --min")
	cmd.Flags().IntVar(&minScore, "min", 0, "Minimum score for CI mode")

	return cmd
}
