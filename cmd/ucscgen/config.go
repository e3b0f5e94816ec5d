// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"ucscgen/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage ucscgen configuration",
	Long: `Manage ucscgen configuration.

Configuration is stored in:
  - Linux: ~/.config/ucscgen/config.cue
  - macOS: ~/Library/Application Support/ucscgen/config.cue
  - Windows: %APPDATA%\ucscgen\config.cue`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			fmt.Print(config.GenerateCUE(cfg))
			return nil
		},
	})
}

func showConfig() error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return err
	}

	// Style definitions using shared color palette
	headerStyle := TitleStyle
	keyStyle := NameStyle
	valueStyle := SuccessStyle

	fmt.Println(headerStyle.Render("Current Configuration"))
	fmt.Println()

	cfgPath, pathErr := config.ConfigFilePath()
	if pathErr == nil && fileExistsCheck(cfgPath) {
		fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), cfgPath)
	} else {
		fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Println()

	// Show values
	fmt.Printf("%s: %s\n", keyStyle.Render("version"), valueStyle.Render(cfg.Version))
	fmt.Printf("%s: %s\n", keyStyle.Render("download_base"), valueStyle.Render(cfg.DownloadBase))
	fmt.Printf("%s: %s\n", keyStyle.Render("recipes_dir"), valueStyle.Render(cfg.RecipesDir))
	fmt.Printf("%s: %s\n", keyStyle.Render("work_dir"), valueStyle.Render(cfg.WorkDir))

	if cfg.TemplatesDir != "" {
		fmt.Printf("%s: %s\n", keyStyle.Render("templates_dir"), valueStyle.Render(cfg.TemplatesDir))
	} else {
		fmt.Printf("%s: %s\n", keyStyle.Render("templates_dir"), SubtitleStyle.Render("(embedded defaults)"))
	}
	if cfg.TablesFile != "" {
		fmt.Printf("%s: %s\n", keyStyle.Render("tables_file"), valueStyle.Render(cfg.TablesFile))
	} else {
		fmt.Printf("%s: %s\n", keyStyle.Render("tables_file"), SubtitleStyle.Render("(built-in tables)"))
	}

	fmt.Println()
	fmt.Printf("%s:\n", keyStyle.Render("ui"))
	fmt.Printf("  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	return nil
}

func initConfig() error {
	cfgPath, err := config.ConfigFilePath()
	if err != nil {
		return err
	}

	if err := config.CreateDefaultConfig(); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	fmt.Printf("%s Created default configuration at %s\n", SuccessStyle.Render("✓"), cfgPath)
	return nil
}

func showConfigPath() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	cfgPath, err := config.ConfigFilePath()
	if err != nil {
		return err
	}

	fmt.Printf("Config directory: %s\n", cfgDir)
	fmt.Printf("Config file: %s\n", cfgPath)
	return nil
}

// fileExistsCheck checks if a file exists and is not a directory.
func fileExistsCheck(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
