// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package glsl defines the target GLSL dialect for toyglsl.
//
// This package knows the names of the external bindings the host runtime
// provides (viewport size, time, frame counter, mouse state, channel
// samplers, a pass-through sampler, a source texture size), assembles the
// declarations preamble that makes a Shadertoy-derived fragment shader
// self-contained, and synthesizes the main() entry point the dialect
// requires.
//
// # Basic Usage
//
//	out := glsl.InsertPreamble(src, glsl.PreambleOptions{
//	    Version: glsl.Version300ES,
//	})
//	out = glsl.EnsureEntryPoint(out, "fragColor", "fragCoord", true)
//
// The preamble is inserted exactly once, immediately after an existing
// #version directive if the buffer has one, otherwise at the very start.
package glsl
