// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import "fmt"

// Version is a GLSL version directive token, e.g. "300 es" or "330".
// The empty token is the default: no explicit #version directive is
// emitted and the host runtime's implicit version applies.
type Version string

// Common GLSL versions.
const (
	VersionDefault Version = ""       // host default, no directive
	Version100     Version = "100"    // ES 1.00 / WebGL 1.0
	Version120     Version = "120"    // OpenGL 2.1
	Version300ES   Version = "300 es" // ES 3.0 / WebGL 2.0
	Version330     Version = "330"    // OpenGL 3.3 Core
)

// Directive returns the #version line for v, or "" for the default version.
func (v Version) Directive() string {
	if v == VersionDefault {
		return ""
	}
	return "#version " + string(v)
}

// External binding names provided by the host runtime.
const (
	UniformImageSize = "imageSize" // vec2, viewport size in pixels
	UniformTime      = "time"      // float, seconds since start
	UniformFrame     = "frame"     // int, frame counter
	UniformMouse     = "iMouse"    // vec4, kept under its Shadertoy name
	UniformTexSize   = "texSize"   // vec2, source texture size in pixels

	SamplerRand = "samplerRand" // pass-through sampler, already in target space

	RemapFunc = "img2tex" // coordinate remap helper
)

// Fallback constants for Shadertoy built-ins with no host binding. The
// names are disjoint from every Shadertoy identifier so a later rewrite
// rule can never re-match them.
const (
	ConstTimeDelta = "timeDelta" // one 60 Hz frame
	ConstDate      = "date"      // epoch
	SampleRateLit  = "44100.0"   // substituted literal, not a binding
)

// NumSamplers is the number of indexed channel samplers.
const NumSamplers = 4

// Sampler returns the name of the indexed channel sampler, "sampler0"
// through "sampler3".
func Sampler(i int) string {
	return fmt.Sprintf("sampler%d", i)
}
