// SPDX-License-Identifier: MPL-2.0

package naming

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTables(t *testing.T) {
	tables := DefaultTables()

	if got := tables.SourceDirFixes["LiftSpec"]; got != "liftSpec" {
		t.Errorf("SourceDirFixes[LiftSpec] = %q, want liftSpec", got)
	}
	if got := tables.SummaryConflicts["rmFaDups"]; got != "rmFaDups" {
		t.Errorf("SummaryConflicts[rmFaDups] = %q, want rmFaDups", got)
	}
	if !tables.Skipped("sizeof") {
		t.Error("sizeof should be on the default skip list")
	}
	if tables.Skipped("addCols") {
		t.Error("addCols should not be on the skip list")
	}
	if got := tables.CustomBuildScripts["fetchChromSizes"]; got != "template-build-fetchChromSizes.sh" {
		t.Errorf("CustomBuildScripts[fetchChromSizes] = %q", got)
	}

	// Every program with an unparseable FOOTER entry needs a manual description.
	for _, program := range []string{
		"estOrient", "fetchChromSizes", "overlapSelect",
		"pslCDnaFilter", "pslHisto", "pslSwap", "pslToBed",
	} {
		if _, ok := tables.ManualDescriptions[program]; !ok {
			t.Errorf("ManualDescriptions missing %q", program)
		}
	}
}

func TestLoadTables_MissingFileReturnsDefaults(t *testing.T) {
	tables, err := LoadTables(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadTables() error: %v", err)
	}
	if !tables.Skipped("sizeof") {
		t.Error("defaults should be returned for a missing tables file")
	}
}

func TestLoadTables_MergesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.toml")
	content := `
skip = ["brokenTool", "sizeof"]

[source_dir_fixes]
"NewName" = "newName"
"LiftSpec" = "liftSpecOverridden"

[manual_descriptions]
"weirdTool" = "A tool with a hand-written description."
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing tables file: %v", err)
	}

	tables, err := LoadTables(path)
	if err != nil {
		t.Fatalf("LoadTables() error: %v", err)
	}

	if got := tables.SourceDirFixes["NewName"]; got != "newName" {
		t.Errorf("new entry not merged: %q", got)
	}
	if got := tables.SourceDirFixes["LiftSpec"]; got != "liftSpecOverridden" {
		t.Errorf("file entry should win over built-in: %q", got)
	}
	if got := tables.ManualDescriptions["pslSwap"]; got == "" {
		t.Error("built-in manual descriptions should survive a merge")
	}
	if !tables.Skipped("brokenTool") {
		t.Error("skip list should be unioned")
	}

	// "sizeof" appears both built-in and in the file; it must not be duplicated.
	count := 0
	for _, name := range tables.Skip {
		if name == "sizeof" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("sizeof appears %d times in the skip list", count)
	}
}

func TestLoadTables_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.toml")
	if err := os.WriteFile(path, []byte("skip = [unclosed"), 0o644); err != nil {
		t.Fatalf("writing tables file: %v", err)
	}

	if _, err := LoadTables(path); err == nil {
		t.Fatal("LoadTables() should fail on malformed TOML")
	}
}
