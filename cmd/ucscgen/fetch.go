// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the source tarball and the FOOTER manifest",
	Long: `Download the two inputs into the work directory without generating
anything. The tarball is skipped when it is already present; the
manifest is always re-downloaded.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		applyFlagOverrides(cfg)

		p, err := newPipeline(cfg)
		if err != nil {
			return err
		}

		artifacts, err := p.Fetch(cmd.Context())
		if err != nil {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
			return err
		}

		fmt.Printf("%s Tarball:  %s\n", SuccessStyle.Render("✓"), artifacts.ArchivePath)
		fmt.Printf("%s Manifest: %s\n", SuccessStyle.Render("✓"), artifacts.ManifestPath)
		return nil
	},
}

func init() {
	fetchCmd.Flags().StringVar(&flagRelease, "release", "", "userApps release to fetch (default from config)")
	fetchCmd.Flags().StringVar(&flagWorkDir, "work-dir", "", "directory the downloads land in")

	fetchCmd.SilenceErrors = true
}
