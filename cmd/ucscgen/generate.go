// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"ucscgen/internal/config"
	"ucscgen/internal/generate"
	"ucscgen/internal/naming"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagRelease   string
	flagRecipes   string
	flagWorkDir   string
	flagTables    string
	flagTemplates string

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Fetch the inputs and write one recipe per program",
		Long: `Fetch the userApps source tarball and the FOOTER manifest, then write a
Bioconda recipe directory for every program the manifest describes.

The tarball is cached in the work directory across runs; the manifest is
re-downloaded every time. Re-running with unchanged inputs rewrites the
same bytes, so the output directory can be kept under version control.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			applyFlagOverrides(cfg)

			p, err := newPipeline(cfg)
			if err != nil {
				return err
			}

			summary, err := p.Run(cmd.Context())
			if err != nil {
				fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
				return err
			}

			printSummary(summary)
			return nil
		},
	}
)

func init() {
	generateCmd.Flags().StringVar(&flagRelease, "release", "", "userApps release to package (default from config)")
	generateCmd.Flags().StringVarP(&flagRecipes, "recipes-dir", "o", "", "directory the recipes are written to")
	generateCmd.Flags().StringVar(&flagWorkDir, "work-dir", "", "directory the downloads land in")
	generateCmd.Flags().StringVar(&flagTables, "tables", "", "exception-table override file (TOML)")
	generateCmd.Flags().StringVar(&flagTemplates, "templates-dir", "", "directory with template overrides")

	generateCmd.SilenceErrors = true
}

// applyFlagOverrides lets command-line flags win over the config file.
func applyFlagOverrides(cfg *config.Config) {
	if flagRelease != "" {
		cfg.Version = flagRelease
	}
	if flagRecipes != "" {
		cfg.RecipesDir = flagRecipes
	}
	if flagWorkDir != "" {
		cfg.WorkDir = flagWorkDir
	}
	if flagTables != "" {
		cfg.TablesFile = flagTables
	}
	if flagTemplates != "" {
		cfg.TemplatesDir = flagTemplates
	}
}

// newPipeline builds a generation pipeline from the effective configuration.
func newPipeline(cfg *config.Config) (*generate.Pipeline, error) {
	tables, err := naming.LoadTables(cfg.TablesFile)
	if err != nil {
		return nil, err
	}
	return generate.New(cfg, tables, generate.WithLogger(newLogger())), nil
}

// newLogger builds the CLI logger, honoring --verbose.
func newLogger() *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "ucscgen",
		Level:  level,
	})
}

func printSummary(summary *generate.Summary) {
	fmt.Printf("%s Wrote %d recipes\n", SuccessStyle.Render("✓"), len(summary.Written))
	if len(summary.Skipped) > 0 {
		fmt.Printf("%s %d programs had no source directory:\n", WarningStyle.Render("!"), len(summary.Skipped))
		for _, program := range summary.Skipped {
			fmt.Printf("  - %s\n", NameStyle.Render(program))
		}
	}
}
