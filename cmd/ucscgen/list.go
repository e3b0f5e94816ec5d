// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"ucscgen/internal/archive"
	"ucscgen/internal/footer"
	"ucscgen/internal/naming"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the programs the FOOTER manifest describes",
	Long: `Download the FOOTER manifest and print the program each block resolves
to, after the exception tables have been applied. Skip-listed programs
are marked instead of dropped so the full manifest stays visible.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		applyFlagOverrides(cfg)

		tables, err := naming.LoadTables(cfg.TablesFile)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(cfg.WorkDir, 0o755); err != nil {
			return fmt.Errorf("creating work dir: %w", err)
		}
		manifestPath := filepath.Join(cfg.WorkDir, "FOOTER")
		fetcher := archive.NewFetcher()
		if err := fetcher.Download(cmd.Context(), cfg.ManifestURL(), manifestPath); err != nil {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
			return err
		}

		f, err := os.Open(manifestPath)
		if err != nil {
			return err
		}
		defer f.Close()

		blocks, err := footer.Parse(f)
		if err != nil {
			return err
		}

		for _, block := range blocks {
			program, keep, err := naming.Resolve(block, tables)
			if err != nil {
				fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
				return err
			}
			if !keep {
				fmt.Printf("%s %s\n", WarningStyle.Render("skip"), NameStyle.Render(block.Header))
				continue
			}
			fmt.Printf("     %s  %s\n", NameStyle.Render(program.Name), SubtitleStyle.Render(firstLine(program.Description)))
		}

		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&flagRelease, "release", "", "userApps release to list (default from config)")
	listCmd.Flags().StringVar(&flagWorkDir, "work-dir", "", "directory the manifest is downloaded to")
	listCmd.Flags().StringVar(&flagTables, "tables", "", "exception-table override file (TOML)")

	listCmd.SilenceErrors = true
}

// firstLine trims a multi-line description down to its first line for the
// one-row-per-program listing.
func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
