// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreambleDeclarations(t *testing.T) {
	p := Preamble(PreambleOptions{}, false)

	assert.Contains(t, p, "precision mediump float;")
	assert.Contains(t, p, "uniform vec2 imageSize;")
	assert.Contains(t, p, "uniform float time;")
	assert.Contains(t, p, "uniform int frame;")
	assert.Contains(t, p, "uniform vec4 iMouse;")
	for i := 0; i < NumSamplers; i++ {
		assert.Contains(t, p, "uniform sampler2D "+Sampler(i)+";")
	}
	assert.Contains(t, p, "uniform sampler2D samplerRand;")
	assert.Contains(t, p, "uniform vec2 texSize;")
	assert.Contains(t, p, "vec2 img2tex(vec2 v)")
	assert.Contains(t, p, "max(texSize, vec2(1.0)) * max(imageSize, vec2(1.0))")

	// nothing requested, nothing emitted
	assert.NotContains(t, p, "#version")
	assert.NotContains(t, p, "const float timeDelta")
	assert.NotContains(t, p, "const vec4 date")
	assert.NotContains(t, p, "// NOTE:")
}

func TestPreambleFallbacks(t *testing.T) {
	p := Preamble(PreambleOptions{TimeDelta: true, Date: true}, false)
	assert.Contains(t, p, "const float timeDelta = 1.0 / 60.0;")
	assert.Contains(t, p, "const vec4 date = vec4(1970.0, 1.0, 1.0, 0.0);")
}

func TestPreambleAdvisories(t *testing.T) {
	p := Preamble(PreambleOptions{ChannelArrays: true, NestedSamplerArg: true}, false)
	assert.Contains(t, p, "iChannelResolution/iChannelTime")
	assert.Contains(t, p, "nested call")
	// advisories come ahead of everything else
	assert.True(t, strings.HasPrefix(p, "// NOTE:"))
}

func TestPreambleVersionDirective(t *testing.T) {
	// non-default version, no existing directive: emit
	p := Preamble(PreambleOptions{Version: Version300ES}, false)
	assert.Contains(t, p, "#version 300 es\n")

	// existing directive wins
	p = Preamble(PreambleOptions{Version: Version300ES}, true)
	assert.NotContains(t, p, "#version")

	// default version never emits
	p = Preamble(PreambleOptions{}, false)
	assert.NotContains(t, p, "#version")
}

func TestInsertPreambleAtTop(t *testing.T) {
	src := "void main() {}\n"
	out := InsertPreamble(src, PreambleOptions{})
	assert.True(t, strings.HasPrefix(out, "precision mediump float;"))
	assert.True(t, strings.HasSuffix(out, src))
	assert.Equal(t, 1, strings.Count(out, "precision mediump float;"))
}

func TestInsertPreambleAfterVersion(t *testing.T) {
	src := "#version 300 es\nvoid main() {}\n"
	out := InsertPreamble(src, PreambleOptions{})
	assert.True(t, strings.HasPrefix(out, "#version 300 es\nprecision mediump float;"))
	assert.Equal(t, 1, strings.Count(out, "#version"))
	assert.Equal(t, 1, strings.Count(out, "precision mediump float;"))
}

func TestVersionDirective(t *testing.T) {
	assert.Equal(t, "", VersionDefault.Directive())
	assert.Equal(t, "#version 300 es", Version300ES.Directive())
	assert.Equal(t, "#version 330", Version330.Directive())
	// the token is an open string
	assert.Equal(t, "#version 460 core", Version("460 core").Directive())
}
