// Package toyglsl converts fragment shaders written in the Shadertoy
// GLSL dialect into self-contained shaders for a plain GLSL host.
//
// Shadertoy shaders rely on implicit built-ins (iTime, iResolution,
// iChannel0..3, ...) and a mainImage per-pixel function instead of
// main(). The converter declares every binding the host dialect expects,
// rewrites the Shadertoy identifiers and texture calls, remaps channel
// sampling coordinates through an img2tex helper, and synthesizes a
// main() entry point around mainImage.
//
// The conversion is a fixed, single-pass pipeline of whole-word textual
// rewrites over the raw source; there is no parser and no guarantee for
// adversarial input. Constructs with no equivalent in the target dialect
// (iChannelResolution, iChannelTime, a pre-existing main) degrade to
// advisory comments in the output rather than errors, so conversion is
// total and returns the buffer directly.
//
// Example usage:
//
//	src := `void mainImage(out vec4 c, in vec2 p) {
//	    c = texture(iChannel0, p / iResolution.xy);
//	}`
//	out := toyglsl.Convert(src)
//
// For an explicit #version directive:
//
//	out := toyglsl.ConvertWithOptions(src, toyglsl.Options{
//	    GLSLVersion: glsl.Version300ES,
//	})
package toyglsl

import (
	"regexp"

	"github.com/gogpu/toyglsl/glsl"
	"github.com/gogpu/toyglsl/toy"
)

// Options configures shader conversion.
type Options struct {
	// GLSLVersion is the target #version token. The default emits no
	// directive; a non-default version is written only when the input
	// has no directive of its own.
	GLSLVersion glsl.Version
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{GLSLVersion: glsl.VersionDefault}
}

// Convert converts Shadertoy shader source using default options.
func Convert(source string) string {
	return ConvertWithOptions(source, DefaultOptions())
}

// ConvertWithOptions converts Shadertoy shader source with custom options.
//
// The pipeline is:
//  1. Strip a leading BOM and detect the mainImage signature
//  2. Scan the original buffer for constructs needing fallbacks
//  3. Rewrite Shadertoy identifiers to host binding names
//  4. Rewrite known-sampler texture calls (with coordinate remap)
//  5. Rewrite remaining generic texture calls
//  6. Insert the declarations preamble
//  7. Synthesize the entry point
//  8. Collapse blank-line runs
//
// The feature scan runs before any rewrite on purpose: the rewrites
// remove the very identifiers it gates on.
func ConvertWithOptions(source string, opts Options) string {
	src := toy.StripBOM(source)
	sig, hasMainImage := toy.DetectMainImage(src)
	feats := toy.Scan(src)

	src = toy.RewriteIdentifiers(src)
	src = toy.RewriteSamplerCalls(src)
	src = toy.RewriteCalls(src)

	src = glsl.InsertPreamble(src, glsl.PreambleOptions{
		Version:          opts.GLSLVersion,
		TimeDelta:        feats.TimeDelta,
		Date:             feats.Date,
		ChannelArrays:    feats.ChannelArrays,
		NestedSamplerArg: feats.NestedSamplerArg,
	})
	src = glsl.EnsureEntryPoint(src, sig.Color, sig.Coord, hasMainImage)

	return collapseBlankLines(src)
}

var blankRuns = regexp.MustCompile(`\n{3,}`)

func collapseBlankLines(src string) string {
	return blankRuns.ReplaceAllString(src, "\n\n")
}
