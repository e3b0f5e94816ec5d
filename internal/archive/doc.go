// SPDX-License-Identifier: MPL-2.0

// Package archive handles the userApps source tarball and the FOOTER manifest.
//
// It is organized into three concerns:
//   - fetch.go: HTTP download of the two artifacts (tarball cached on disk,
//     manifest always re-fetched)
//   - listing.go: flat path listing of the tarball contents under kent/src
//   - locate.go: mapping a program name to its source subdirectory
package archive
