// SPDX-License-Identifier: MPL-2.0

package archive

import (
	"sort"
	"strings"
)

// archiveRoot is stripped from located paths; build scripts address the
// source tree relative to the userApps checkout.
const archiveRoot = "./userApps/"

// SourceDir identifies the source subdirectory for a program: the
// lexicographically first directory entry whose path contains the program
// name as a substring, with the archive root stripped. The bool is false
// when no directory matches.
//
// Substring matching can over-match when one program's name is a prefix of
// another's; the lexicographic tie-break keeps the result deterministic, and
// an exact match sorts ahead of any longer sibling.
func SourceDir(program string, entries []Entry) (string, bool) {
	var hits []string
	for _, e := range entries {
		if e.Dir && strings.Contains(e.Path, program) {
			hits = append(hits, e.Path)
		}
	}
	if len(hits) == 0 {
		return "", false
	}

	sort.Strings(hits)
	return strings.TrimPrefix(hits[0], archiveRoot), true
}
