package learngl

import (
	"errors"
	"fmt"
	"strings"
)

// InfoLogSize is the largest diagnostic message read back from the backend
// for a failed compile or link, in bytes.
const InfoLogSize = 512

// ShaderKind is the pipeline stage a shader runs in.
type ShaderKind int

const (
	VertexShader ShaderKind = iota
	FragmentShader
)

// String returns "vertex" or "fragment".
func (k ShaderKind) String() string {
	switch k {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	default:
		return fmt.Sprintf("ShaderKind(%d)", int(k))
	}
}

// ParseShaderKind parses "vertex" or "fragment" (also "vert" / "frag").
func ParseShaderKind(s string) (ShaderKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertex", "vert":
		return VertexShader, nil
	case "fragment", "frag":
		return FragmentShader, nil
	default:
		return 0, fmt.Errorf("unknown shader kind %q", s)
	}
}

// ShaderLang is the language a shader source is written in.
type ShaderLang int

const (
	GLSL ShaderLang = iota // Compiled by the backend as-is
	WGSL                   // Translated to GLSL before compilation
)

// String returns "glsl" or "wgsl".
func (l ShaderLang) String() string {
	switch l {
	case GLSL:
		return "glsl"
	case WGSL:
		return "wgsl"
	default:
		return fmt.Sprintf("ShaderLang(%d)", int(l))
	}
}

// ParseShaderLang parses "glsl" or "wgsl". An empty string means GLSL.
func ParseShaderLang(s string) (ShaderLang, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "glsl":
		return GLSL, nil
	case "wgsl":
		return WGSL, nil
	default:
		return 0, fmt.Errorf("unknown shader language %q", s)
	}
}

// ShaderSource is immutable shader text plus how to interpret it.
type ShaderSource struct {
	Lang  ShaderLang
	Code  string
	Entry string // WGSL entry point; empty selects the first one
}

// GLSLSource wraps GLSL code.
func GLSLSource(code string) ShaderSource {
	return ShaderSource{Lang: GLSL, Code: code}
}

// WGSLSource wraps WGSL code with the entry point to compile.
func WGSLSource(code, entry string) ShaderSource {
	return ShaderSource{Lang: WGSL, Code: code, Entry: entry}
}

// Errors returned while building shaders, programs and scenes.
var (
	ErrTooFewShaders      = errors.New("program needs at least two shaders")
	ErrInvalidShader      = errors.New("invalid shader handle")
	ErrInvalidProgram     = errors.New("invalid program handle")
	ErrInvalidVertexArray = errors.New("invalid vertex array handle")
	ErrEmptySource        = errors.New("empty shader source")
)

// CompileError is returned when a shader fails to compile or translate.
type CompileError struct {
	Kind ShaderKind
	Log  string // Backend diagnostics, at most InfoLogSize bytes
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Kind, e.Log)
}

// LinkError is returned when a program fails to link.
type LinkError struct {
	Log string // Backend diagnostics, at most InfoLogSize bytes
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader program linking failed: %s", e.Log)
}

// truncateInfoLog limits a diagnostic to InfoLogSize bytes and drops the
// trailing NUL and whitespace backends tend to append.
func truncateInfoLog(log string) string {
	if len(log) > InfoLogSize {
		log = log[:InfoLogSize]
	}
	return strings.TrimRight(log, "\x00 \t\r\n")
}
