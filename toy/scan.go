// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package toy

import (
	"regexp"
	"strings"
)

// Signature records the declared parameter names of a mainImage
// definition. The synthesized entry point calls mainImage positionally,
// so the names are only used for documentation.
type Signature struct {
	Color string // out vec4 parameter
	Coord string // in vec2 parameter
}

// Features is the set of constructs found in the original buffer that
// need fallback declarations or advisory comments. It must be computed
// before any rewriting mutates the buffer.
type Features struct {
	TimeDelta        bool // iTimeDelta referenced
	Date             bool // iDate referenced
	ChannelArrays    bool // iChannelResolution or iChannelTime referenced
	NestedSamplerArg bool // sampler call coordinate contains nested parens
}

// StripBOM removes a single leading byte-order mark.
func StripBOM(src string) string {
	return strings.TrimPrefix(src, "\uFEFF")
}

// mainImage with an out vec4 and an in vec2 parameter; the qualifiers
// are optional, the names are free.
var mainImageDef = regexp.MustCompile(
	`\bvoid\s+mainImage\s*\(\s*(?:out\s+)?vec4\s+([A-Za-z_]\w*)\s*,\s*(?:in\s+)?vec2\s+([A-Za-z_]\w*)\s*\)`)

// DetectMainImage reports whether src defines a Shadertoy per-pixel
// function and, if so, its parameter names.
func DetectMainImage(src string) (Signature, bool) {
	m := mainImageDef.FindStringSubmatch(src)
	if m == nil {
		return Signature{}, false
	}
	return Signature{Color: m[1], Coord: m[2]}, true
}

var (
	timeDeltaRef    = regexp.MustCompile(`\biTimeDelta\b`)
	dateRef         = regexp.MustCompile(`\biDate\b`)
	channelArrayRef = regexp.MustCompile(`\biChannel(?:Resolution|Time)\b`)

	// Conservative single-argument capture: everything up to the first
	// closing paren. An opening paren inside the capture means the call
	// boundary was mislocated.
	knownSamplerCall = regexp.MustCompile(`\btexture\s*\(\s*(?:iChannel[0-3]|samplerRand)\s*,([^)]*)\)`)
)

// Scan computes the feature set of the original, unrewritten buffer.
func Scan(src string) Features {
	f := Features{
		TimeDelta:     timeDeltaRef.MatchString(src),
		Date:          dateRef.MatchString(src),
		ChannelArrays: channelArrayRef.MatchString(src),
	}
	for _, m := range knownSamplerCall.FindAllStringSubmatch(src, -1) {
		if strings.Contains(m[1], "(") {
			f.NestedSamplerArg = true
			break
		}
	}
	return f
}
