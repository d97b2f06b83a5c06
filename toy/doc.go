// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package toy handles the Shadertoy side of the conversion: it detects
// the mainImage per-pixel function, scans the original buffer for
// built-ins that need fallback handling, and rewrites Shadertoy
// identifiers and texture calls into the target dialect.
//
// All rewriting is whole-word textual substitution over the raw buffer;
// there is no parser. Scan must run against the original buffer before
// any rewrite, since the rewrites remove the identifiers it looks for.
package toy
