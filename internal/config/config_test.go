// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	SetConfigDirOverride(t.TempDir())
	t.Cleanup(Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Version != "324" {
		t.Errorf("Version = %q, want 324", cfg.Version)
	}
	if cfg.DownloadBase != "http://hgdownload.cse.ucsc.edu/admin/exe" {
		t.Errorf("DownloadBase = %q", cfg.DownloadBase)
	}
	if cfg.RecipesDir != "recipes" {
		t.Errorf("RecipesDir = %q", cfg.RecipesDir)
	}
}

func TestLoad_ConfigFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `
version: "357"
recipes_dir: "/srv/recipes"

ui: {
	verbose: true
}
`
	if err := os.WriteFile(filepath.Join(dir, "config.cue"), []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Version != "357" {
		t.Errorf("Version = %q, want 357", cfg.Version)
	}
	if cfg.RecipesDir != "/srv/recipes" {
		t.Errorf("RecipesDir = %q", cfg.RecipesDir)
	}
	if !cfg.UI.Verbose {
		t.Error("UI.Verbose should be true")
	}
	// Unset fields keep their defaults.
	if cfg.DownloadBase != "http://hgdownload.cse.ucsc.edu/admin/exe" {
		t.Errorf("DownloadBase = %q, want the default", cfg.DownloadBase)
	}
}

func TestLoad_SchemaViolation(t *testing.T) {
	dir := t.TempDir()
	// version must be numeric per the schema.
	if err := os.WriteFile(filepath.Join(dir, "config.cue"), []byte(`version: "v324"`), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	if _, err := Load(); err == nil {
		t.Fatal("Load() should reject a config violating the schema")
	}
}

func TestLoad_ExplicitConfigFileMissing(t *testing.T) {
	SetConfigFilePathOverride(filepath.Join(t.TempDir(), "absent.cue"))
	t.Cleanup(Reset)

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail when the --config file does not exist")
	}
}

func TestConfig_URLs(t *testing.T) {
	cfg := DefaultConfig()

	wantArchive := "http://hgdownload.cse.ucsc.edu/admin/exe/userApps.v324.src.tgz"
	if got := cfg.ArchiveURL(); got != wantArchive {
		t.Errorf("ArchiveURL() = %q, want %q", got, wantArchive)
	}

	wantManifest := "http://hgdownload.cse.ucsc.edu/admin/exe/linux.x86_64/FOOTER"
	if got := cfg.ManifestURL(); got != wantManifest {
		t.Errorf("ManifestURL() = %q, want %q", got, wantManifest)
	}
}

func TestGenerateCUE_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	if err := CreateDefaultConfig(); err != nil {
		t.Fatalf("CreateDefaultConfig() error: %v", err)
	}

	// The generated file must load back without schema errors.
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() of generated config error: %v", err)
	}
	if cfg.Version != DefaultConfig().Version {
		t.Errorf("round-tripped Version = %q", cfg.Version)
	}
}

func TestGenerateCUE_OmitsEmptyOptionalFields(t *testing.T) {
	out := GenerateCUE(DefaultConfig())
	if strings.Contains(out, "templates_dir") {
		t.Errorf("empty templates_dir should be omitted:\n%s", out)
	}
	if !strings.Contains(out, `version: "324"`) {
		t.Errorf("version missing:\n%s", out)
	}
}
