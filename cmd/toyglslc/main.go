// Command toyglslc converts Shadertoy fragment shaders to plain GLSL.
//
// Usage:
//
//	toyglslc [options] <input>
//
// Examples:
//
//	toyglslc shader.frag                  # Convert to stdout
//	toyglslc -o out.frag shader.frag      # Convert to file
//	toyglslc -glsl "300 es" shader.frag   # Emit an explicit #version
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gogpu/toyglsl"
	"github.com/gogpu/toyglsl/glsl"
)

var (
	output      = flag.String("o", "", "output file (default: stdout)")
	glslVersion = flag.String("glsl", "", "target #version token, e.g. \"300 es\" (default: none)")
	version     = flag.Bool("version", false, "print version")
)

const toyglslVersion = "0.1.0-dev"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("toyglslc version %s\n", toyglslVersion)
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		usage()
		os.Exit(1)
	}

	inputPath := args[0]

	source, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	opts := toyglsl.Options{
		GLSLVersion: glsl.Version(*glslVersion),
	}
	converted := toyglsl.ConvertWithOptions(string(source), opts)

	if *output != "" {
		err = os.WriteFile(*output, []byte(converted), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Successfully converted %s to %s (%d bytes)\n", inputPath, *output, len(converted))
	} else {
		_, err = os.Stdout.WriteString(converted)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: toyglslc [options] <input.frag>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  toyglslc shader.frag                Convert to stdout\n")
	fmt.Fprintf(os.Stderr, "  toyglslc -o out.frag shader.frag    Convert to file\n")
	fmt.Fprintf(os.Stderr, "  toyglslc -glsl \"300 es\" shader.frag Emit an explicit #version\n")
}
