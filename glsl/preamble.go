// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"regexp"
	"strings"
)

// PreambleOptions configures the declarations preamble.
type PreambleOptions struct {
	// Version is the explicit #version token to emit. The directive is
	// only written for a non-default version, and only when the buffer
	// does not already carry one.
	Version Version

	// TimeDelta and Date request the fallback constant definitions for
	// iTimeDelta and iDate. They must be computed against the original,
	// unrewritten buffer.
	TimeDelta bool
	Date      bool

	// ChannelArrays marks use of iChannelResolution/iChannelTime, which
	// have no equivalent binding and only get an advisory comment.
	ChannelArrays bool

	// NestedSamplerArg marks a sampler call whose coordinate argument
	// contains nested parentheses; the single-argument call matcher may
	// have mis-captured it.
	NestedSamplerArg bool
}

var versionLine = regexp.MustCompile(`(?m)^[ \t]*#version[^\n]*\n?`)

// Preamble assembles the declarations block: advisory comments, an
// optional #version directive, the default precision, the external
// bindings, any requested fallback constants, and the coordinate remap
// helper.
func Preamble(opts PreambleOptions, hasVersionDirective bool) string {
	var b strings.Builder

	if opts.ChannelArrays {
		b.WriteString("// NOTE: iChannelResolution/iChannelTime are not supported; the shader\n")
		b.WriteString("// NOTE: referenced them and will need manual adjustment.\n")
	}
	if opts.NestedSamplerArg {
		b.WriteString("// NOTE: a sampler call takes a nested call as its coordinate; verify the\n")
		b.WriteString("// NOTE: rewritten argument boundaries below.\n")
	}

	if d := opts.Version.Directive(); d != "" && !hasVersionDirective {
		b.WriteString(d)
		b.WriteString("\n")
	}
	b.WriteString("precision mediump float;\n\n")

	b.WriteString("uniform vec2 " + UniformImageSize + ";\n")
	b.WriteString("uniform float " + UniformTime + ";\n")
	b.WriteString("uniform int " + UniformFrame + ";\n")
	b.WriteString("uniform vec4 " + UniformMouse + ";\n")
	for i := 0; i < NumSamplers; i++ {
		b.WriteString("uniform sampler2D " + Sampler(i) + ";\n")
	}
	b.WriteString("uniform sampler2D " + SamplerRand + ";\n")
	b.WriteString("uniform vec2 " + UniformTexSize + ";\n")

	if opts.TimeDelta {
		b.WriteString("const float " + ConstTimeDelta + " = 1.0 / 60.0;\n")
	}
	if opts.Date {
		b.WriteString("const vec4 " + ConstDate + " = vec4(1970.0, 1.0, 1.0, 0.0);\n")
	}

	// Both sizes are floored at (1,1) so an unbound texture cannot
	// divide by zero.
	b.WriteString("\nvec2 " + RemapFunc + "(vec2 v) {\n")
	b.WriteString("\treturn v / max(" + UniformTexSize + ", vec2(1.0)) * max(" + UniformImageSize + ", vec2(1.0));\n")
	b.WriteString("}\n\n")

	return b.String()
}

// InsertPreamble inserts the declarations preamble into src exactly once:
// immediately after an existing #version line anywhere in the buffer,
// otherwise at the very start.
func InsertPreamble(src string, opts PreambleOptions) string {
	loc := versionLine.FindStringIndex(src)
	block := Preamble(opts, loc != nil)
	if loc == nil {
		return block + src
	}
	end := loc[1]
	return src[:end] + block + src[end:]
}
