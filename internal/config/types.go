// SPDX-License-Identifier: MPL-2.0

package config

import "fmt"

type (
	// Config holds the application configuration.
	Config struct {
		// Version is the userApps release the recipes are generated for.
		// It appears in the tarball URL and in every meta.yaml.
		Version string `json:"version" mapstructure:"version"`
		// DownloadBase is the URL prefix the tarball and manifest are
		// fetched from.
		DownloadBase string `json:"download_base" mapstructure:"download_base"`
		// RecipesDir is where generated recipe directories are written.
		RecipesDir string `json:"recipes_dir" mapstructure:"recipes_dir"`
		// TemplatesDir holds template overrides; empty means embedded
		// defaults only.
		TemplatesDir string `json:"templates_dir" mapstructure:"templates_dir"`
		// WorkDir is where the downloaded tarball and manifest land.
		WorkDir string `json:"work_dir" mapstructure:"work_dir"`
		// TablesFile is the exception-table override file (TOML). A missing
		// file means built-in tables only.
		TablesFile string `json:"tables_file" mapstructure:"tables_file"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// ArchiveURL returns the versioned source tarball URL.
func (c *Config) ArchiveURL() string {
	return fmt.Sprintf("%s/userApps.v%s.src.tgz", c.DownloadBase, c.Version)
}

// ManifestURL returns the FOOTER manifest URL.
func (c *Config) ManifestURL() string {
	return c.DownloadBase + "/linux.x86_64/FOOTER"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Version:      "324",
		DownloadBase: "http://hgdownload.cse.ucsc.edu/admin/exe",
		RecipesDir:   "recipes",
		TemplatesDir: "",
		WorkDir:      ".",
		TablesFile:   "",
		UI: UIConfig{
			Verbose: false,
		},
	}
}
