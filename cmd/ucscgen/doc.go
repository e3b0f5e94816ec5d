// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for ucscgen.
//
// This package implements the Cobra command hierarchy for the ucscgen CLI:
// the root command plus subcommands for recipe generation, artifact
// fetching, manifest inspection, and configuration management.
package cmd
