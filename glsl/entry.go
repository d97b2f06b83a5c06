// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"regexp"
)

var mainDef = regexp.MustCompile(`\bvoid\s+main\s*\(`)

// HasEntryPoint reports whether src already defines a main() entry point.
func HasEntryPoint(src string) bool {
	return mainDef.MatchString(src)
}

// EnsureEntryPoint makes src end in a valid fragment entry point.
//
// If the buffer defines mainImage but no main, a main is appended that
// calls mainImage positionally with gl_FragColor and gl_FragCoord.xy;
// colorParam and coordParam are the declared parameter names and appear
// only in the explanatory comment. If both exist, the buffer is left
// structurally untouched and an advisory comment is appended. If only
// main exists, nothing changes. If neither exists, a no-op main is
// appended so the result is still a well-formed shader.
func EnsureEntryPoint(src, colorParam, coordParam string, hasMainImage bool) string {
	hasMain := HasEntryPoint(src)
	switch {
	case hasMainImage && !hasMain:
		return src + fmt.Sprintf(`
// %s <- gl_FragColor, %s <- gl_FragCoord.xy (positional call)
void main() {
	mainImage(gl_FragColor, gl_FragCoord.xy);
}
`, colorParam, coordParam)
	case hasMainImage && hasMain:
		return src + "\n// NOTE: the shader already defines main(); verify it calls mainImage().\n"
	case hasMain:
		return src
	default:
		return src + `
void main() {
	gl_FragColor = vec4(0.0);
}
`
	}
}
