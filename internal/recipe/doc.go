// SPDX-License-Identifier: MPL-2.0

// Package recipe renders per-program recipe directories.
//
// A recipe bundles four files: meta.yaml (package metadata), build.sh (build
// script, with per-program overrides), run_test.sh (smoke test), and a copy
// of the shared include.patch. Templates are plain text/template files; the
// package ships embedded defaults and prefers same-named files from a
// templates directory when present.
//
// Rendered output is checked before it is written: meta.yaml must be
// well-formed YAML and build scripts must parse as shell, so a broken
// template surfaces at render time instead of at package build time.
package recipe
