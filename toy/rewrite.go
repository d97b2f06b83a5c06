// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package toy

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gogpu/toyglsl/glsl"
)

// rule is one whole-word substitution. The table is ordered: component
// accesses of iResolution must rewrite before the bare identifier, and
// every replacement name is disjoint from every pattern so no rule can
// re-match another rule's output.
type rule struct {
	pattern *regexp.Regexp
	replace string
}

var identifierRules = []rule{
	{regexp.MustCompile(`\biTimeDelta\b`), glsl.ConstTimeDelta},
	{regexp.MustCompile(`\biGlobalTime\b`), glsl.UniformTime}, // legacy alias
	{regexp.MustCompile(`\biTime\b`), glsl.UniformTime},
	// Swizzles expressible on the vec2 viewport binding stay component
	// accesses; anything else (bare, .z, .xyz) goes through the vec3
	// form with its constant 1.0 depth.
	{regexp.MustCompile(`\biResolution\.([xy]+)\b`), glsl.UniformImageSize + ".$1"},
	{regexp.MustCompile(`\biResolution\b`), "vec3(" + glsl.UniformImageSize + ", 1.0)"},
	{regexp.MustCompile(`\biFrame\b`), glsl.UniformFrame},
	{regexp.MustCompile(`\biMouse\b`), glsl.UniformMouse},
	{regexp.MustCompile(`\biDate\b`), glsl.ConstDate},
	{regexp.MustCompile(`\biSampleRate\b`), glsl.SampleRateLit},
	{regexp.MustCompile(`\biChannel0\b`), glsl.Sampler(0)},
	{regexp.MustCompile(`\biChannel1\b`), glsl.Sampler(1)},
	{regexp.MustCompile(`\biChannel2\b`), glsl.Sampler(2)},
	{regexp.MustCompile(`\biChannel3\b`), glsl.Sampler(3)},
}

// RewriteIdentifiers applies the Shadertoy builtin substitution table.
// Everything outside the matched identifiers is preserved byte for byte.
func RewriteIdentifiers(src string) string {
	for _, r := range identifierRules {
		src = r.pattern.ReplaceAllString(src, r.replace)
	}
	return src
}

// samplerCallRule rewrites texture(<sampler>, <coord>) for one known
// sampler. The coordinate capture is conservative: it stops at the first
// closing paren, so nested calls inside the coordinate are mis-captured
// (Scan flags those).
type samplerCallRule struct {
	pattern *regexp.Regexp
	remap   bool
	sampler string
}

var samplerCallRules = buildSamplerCallRules()

func buildSamplerCallRules() []samplerCallRule {
	rules := make([]samplerCallRule, 0, glsl.NumSamplers+1)
	for i := 0; i < glsl.NumSamplers; i++ {
		rules = append(rules, samplerCallRule{
			pattern: samplerCallPattern(glsl.Sampler(i)),
			remap:   true,
			sampler: glsl.Sampler(i),
		})
	}
	// The pass-through sampler already lives in target coordinate
	// space, so its coordinate is not remapped.
	rules = append(rules, samplerCallRule{
		pattern: samplerCallPattern(glsl.SamplerRand),
		remap:   false,
		sampler: glsl.SamplerRand,
	})
	return rules
}

func samplerCallPattern(sampler string) *regexp.Regexp {
	return regexp.MustCompile(`\btexture\s*\(\s*` + regexp.QuoteMeta(sampler) + `\s*,([^)]*)\)`)
}

// RewriteSamplerCalls rewrites sampling calls bound to the known
// samplers into texture2D calls, wrapping the coordinate of the four
// indexed channel samplers in the img2tex remap. Runs after
// RewriteIdentifiers (the channel identifiers are already renamed) and
// must run before RewriteCalls so the remap-aware form wins.
func RewriteSamplerCalls(src string) string {
	for _, r := range samplerCallRules {
		src = r.pattern.ReplaceAllStringFunc(src, func(call string) string {
			coord := strings.TrimSpace(r.pattern.FindStringSubmatch(call)[1])
			if r.remap {
				return fmt.Sprintf("texture2D(%s, %s(%s))", r.sampler, glsl.RemapFunc, coord)
			}
			return fmt.Sprintf("texture2D(%s, %s)", r.sampler, coord)
		})
	}
	return src
}

var genericCall = regexp.MustCompile(`\btexture\s*\(`)

// RewriteCalls renames any remaining texture( calls, e.g. on
// user-declared samplers, to texture2D( with the arguments untouched.
// No remap is applied since the binding is unknown.
func RewriteCalls(src string) string {
	return genericCall.ReplaceAllString(src, "texture2D(")
}
