// SPDX-License-Identifier: MPL-2.0

// Package generate orchestrates the recipe generation pipeline.
//
// The pipeline is sequential: fetch the two artifacts, read the tarball
// listing, then walk the manifest blocks resolving, locating, and rendering
// one program at a time. Name-resolution failures stop the run; a program
// that cannot be located in the source tree is logged and skipped.
package generate
