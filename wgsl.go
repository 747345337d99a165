package learngl

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
)

// translateWGSL compiles WGSL to GLSL targeting the given language version.
// version uses the GL context numbering, e.g. 3.3 -> "#version 330".
func translateWGSL(src ShaderSource, major, minor int) (string, error) {
	ast, err := naga.Parse(src.Code)
	if err != nil {
		return "", err
	}
	module, err := naga.LowerWithSource(ast, src.Code)
	if err != nil {
		return "", err
	}
	verrs, err := naga.Validate(module)
	if err != nil {
		return "", err
	}
	if len(verrs) > 0 {
		return "", fmt.Errorf("validation failed: %w", &verrs[0])
	}

	opts := glsl.DefaultOptions()
	opts.LangVersion = glsl.Version{Major: uint8(major), Minor: uint8(minor * 10)}
	opts.EntryPoint = src.Entry
	code, _, err := glsl.Compile(module, opts)
	if err != nil {
		return "", err
	}
	return code, nil
}
