// SPDX-License-Identifier: MPL-2.0

package naming

import (
	"errors"
	"fmt"

	"ucscgen/internal/footer"
)

var (
	// ErrNameMismatch is the sentinel error wrapped by MismatchError.
	ErrNameMismatch = errors.New("header and summary names mismatch")
	// ErrMissingDescription is the sentinel error wrapped by MissingDescriptionError.
	ErrMissingDescription = errors.New("no manual description")
)

type (
	// Program is a resolved manifest block: a canonical program name plus the
	// description that goes into its recipe metadata.
	Program struct {
		Name        string
		Description string
	}

	// MismatchError reports a header/summary name conflict that no
	// SummaryConflicts entry resolves.
	MismatchError struct {
		Header  string
		Summary string
	}

	// MissingDescriptionError reports a header-only block whose program has
	// no ManualDescriptions entry.
	MissingDescriptionError struct {
		Program string
	}
)

// Error implements the error interface for MismatchError.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("mismatch in header and summary. header: %q; summary: %q", e.Header, e.Summary)
}

// Unwrap returns ErrNameMismatch for errors.Is() compatibility.
func (e *MismatchError) Unwrap() error { return ErrNameMismatch }

// Error implements the error interface for MissingDescriptionError.
func (e *MissingDescriptionError) Error() string {
	return fmt.Sprintf("program %q has a header but no summary line and no manual description", e.Program)
}

// Unwrap returns ErrMissingDescription for errors.Is() compatibility.
func (e *MissingDescriptionError) Unwrap() error { return ErrMissingDescription }

// Resolve maps a parsed block to a Program using the exception tables.
//
// The second return is false when the program is skip-listed; such blocks are
// dropped silently. Errors are fatal: an unresolved name conflict or a
// missing manual description stops the whole run before any recipe for the
// offending program is written.
func Resolve(block footer.Block, tables Tables) (Program, bool, error) {
	if !block.HasSummary() {
		program := block.Header
		if tables.Skipped(program) {
			return Program{}, false, nil
		}

		description, ok := tables.ManualDescriptions[program]
		if !ok {
			return Program{}, false, &MissingDescriptionError{Program: program}
		}
		return Program{Name: program, Description: description}, true, nil
	}

	program := block.Header
	if fixed, ok := tables.SourceDirFixes[program]; ok {
		program = fixed
	}

	if summaryProgram := block.SummaryProgram(); program != summaryProgram {
		resolved, ok := tables.SummaryConflicts[program]
		if !ok {
			return Program{}, false, &MismatchError{Header: program, Summary: summaryProgram}
		}
		program = resolved
	}

	if tables.Skipped(program) {
		return Program{}, false, nil
	}

	return Program{Name: program, Description: block.Description}, true, nil
}
