// SPDX-License-Identifier: MPL-2.0

// Package naming resolves parsed manifest blocks to canonical program names.
//
// The FOOTER manifest and the userApps source tree disagree on a handful of
// names, and a few programs have no machine-readable summary at all. Those
// exceptions live in immutable lookup tables (Tables) rather than control
// flow, so the policy can be overridden from a tables.toml file and tested
// in isolation.
package naming
