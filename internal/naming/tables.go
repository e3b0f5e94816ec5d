// SPDX-License-Identifier: MPL-2.0

package naming

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Tables holds the name-resolution exception tables. The zero value resolves
// nothing; start from DefaultTables and merge overrides on top.
type Tables struct {
	// SourceDirFixes maps a header program name to the name actually used in
	// the source tree, for programs whose FOOTER banner disagrees with the
	// directory layout.
	SourceDirFixes map[string]string `toml:"source_dir_fixes"`

	// SummaryConflicts maps a header program name to the resolved name when
	// the banner and summary lines disagree. Absence of an entry makes the
	// conflict a fatal error.
	SummaryConflicts map[string]string `toml:"summary_conflicts"`

	// ManualDescriptions supplies descriptions for programs whose FOOTER
	// summary line does not match the expected shape.
	ManualDescriptions map[string]string `toml:"manual_descriptions"`

	// Skip lists programs that never get a recipe, regardless of manifest or
	// archive contents.
	Skip []string `toml:"skip"`

	// CustomBuildScripts maps a program to the filename of its build script
	// template, for programs whose build deviates from the shared template.
	CustomBuildScripts map[string]string `toml:"custom_build_scripts"`
}

// DefaultTables returns the built-in exception tables for the current
// userApps releases.
func DefaultTables() Tables {
	return Tables{
		SourceDirFixes: map[string]string{
			"LiftSpec": "liftSpec",
		},
		SummaryConflicts: map[string]string{
			"rmFaDups": "rmFaDups",
		},
		ManualDescriptions: map[string]string{
			"estOrient": joinLines(
				"Read ESTs from a database and determine orientation based on",
				"estOrientInfo table or direction in gbCdnaInfo table.  Update",
				"PSLs so that the strand reflects the direction of transcription.",
				"By default, PSLs where the direction can't be determined are dropped.",
			),
			"fetchChromSizes": "used to fetch chrom.sizes information from UCSC for the given <db>",
			"overlapSelect": joinLines(
				"Select records based on overlapping chromosome ranges.  The ranges are",
				"specified in the selectFile, with each block specifying a range.",
				"Records are copied from the inFile to outFile based on the selection",
				"criteria.  Selection is based on blocks or exons rather than entire",
				"range.",
			),
			"pslCDnaFilter": joinLines(
				"Filter cDNA alignments in psl format.  Filtering criteria are",
				"comparative, selecting near best in genome alignments for each given",
				"cDNA and non-comparative, based only on the quality of an individual",
				"alignment.",
			),
			"pslHisto": joinLines(
				"Collect counts on PSL alignments for making histograms. These then be",
				"analyzed with R, textHistogram, etc.",
			),
			"pslSwap":  "Swap target and query in psls",
			"pslToBed": "transform a psl format file to a bed format file.",
		},
		Skip: []string{
			"sizeof",
		},
		CustomBuildScripts: map[string]string{
			"fetchChromSizes": "template-build-fetchChromSizes.sh",
		},
	}
}

// LoadTables returns DefaultTables with the overrides from the TOML file at
// path merged on top. Map entries from the file win over built-in entries;
// skip entries are unioned. A missing file is not an error: the defaults are
// returned unchanged.
func LoadTables(path string) (Tables, error) {
	tables := DefaultTables()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return tables, nil
	}
	if err != nil {
		return Tables{}, fmt.Errorf("reading tables file: %w", err)
	}

	var overrides Tables
	if err := toml.Unmarshal(data, &overrides); err != nil {
		return Tables{}, fmt.Errorf("parsing tables file %s: %w", path, err)
	}

	tables.merge(overrides)
	return tables, nil
}

// merge applies the override tables on top of t.
func (t *Tables) merge(o Tables) {
	mergeMap(&t.SourceDirFixes, o.SourceDirFixes)
	mergeMap(&t.SummaryConflicts, o.SummaryConflicts)
	mergeMap(&t.ManualDescriptions, o.ManualDescriptions)
	mergeMap(&t.CustomBuildScripts, o.CustomBuildScripts)

	for _, name := range o.Skip {
		if !slices.Contains(t.Skip, name) {
			t.Skip = append(t.Skip, name)
		}
	}
}

// Skipped reports whether the program is on the skip list.
func (t Tables) Skipped(program string) bool {
	return slices.Contains(t.Skip, program)
}

func mergeMap(dst *map[string]string, src map[string]string) {
	if len(src) == 0 {
		return
	}
	if *dst == nil {
		*dst = make(map[string]string, len(src))
	}
	for k, v := range src {
		(*dst)[k] = v
	}
}

// joinLines keeps the multi-line manual descriptions readable in source while
// storing them as plain newline-joined text.
func joinLines(lines ...string) string {
	return strings.Join(lines, "\n")
}
