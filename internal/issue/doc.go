// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// Errors carry the operation that failed, the resource involved, and remediation
// suggestions, so the CLI can print something more useful than a bare error
// string when recipe generation stops.
package issue
