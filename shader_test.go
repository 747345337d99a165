package learngl_test

import (
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/learngl"
)

func TestShaderKind(t *testing.T) {
	assert.Equal(t, "vertex", learngl.VertexShader.String())
	assert.Equal(t, "fragment", learngl.FragmentShader.String())

	for in, want := range map[string]learngl.ShaderKind{
		"vertex":   learngl.VertexShader,
		"VERT":     learngl.VertexShader,
		"fragment": learngl.FragmentShader,
		" frag ":   learngl.FragmentShader,
	} {
		got, err := learngl.ParseShaderKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := learngl.ParseShaderKind("geometry")
	assert.Error(t, err)
}

func TestShaderLang(t *testing.T) {
	lang, err := learngl.ParseShaderLang("")
	require.NoError(t, err)
	assert.Equal(t, learngl.GLSL, lang)

	lang, err = learngl.ParseShaderLang("WGSL")
	require.NoError(t, err)
	assert.Equal(t, learngl.WGSL, lang)

	_, err = learngl.ParseShaderLang("hlsl")
	assert.Error(t, err)
}

func TestBuilderShaderCompiles(t *testing.T) {
	dev := newFakeDevice()
	logger, buf := newTestLogger(slog.LevelInfo)
	b := learngl.NewBuilder(dev, learngl.WithLogger(logger))

	sh, err := b.Shader(learngl.VertexShader, learngl.GLSLSource(learngl.PositionVertexShader))
	require.NoError(t, err)
	require.NotZero(t, sh)

	assert.Equal(t, learngl.VertexShader, dev.shaders[sh].kind)
	assert.Equal(t, learngl.PositionVertexShader, dev.shaders[sh].source)
	assert.False(t, dev.shaders[sh].deleted)
	assert.Empty(t, buf.String(), "no log lines on success")
}

func TestBuilderShaderCompileFailure(t *testing.T) {
	for _, kind := range []learngl.ShaderKind{learngl.VertexShader, learngl.FragmentShader} {
		t.Run(kind.String(), func(t *testing.T) {
			dev := newFakeDevice()
			dev.compileLog = failSourcesContaining("oops", "0:3(1): error: syntax error, unexpected IDENTIFIER")
			logger, buf := newTestLogger(slog.LevelInfo)
			b := learngl.NewBuilder(dev, learngl.WithLogger(logger))

			sh, err := b.Shader(kind, learngl.GLSLSource("#version 330 core\noops"))
			require.Error(t, err)
			assert.Zero(t, sh, "failed compiles never return a usable handle")

			var cerr *learngl.CompileError
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, kind, cerr.Kind)
			assert.Equal(t, "0:3(1): error: syntax error, unexpected IDENTIFIER", cerr.Log)

			out := buf.String()
			assert.True(t, strings.HasPrefix(out, "[ERROR] "), out)
			assert.Contains(t, out, kind.String())
			assert.Contains(t, out, "syntax error, unexpected IDENTIFIER")
			assert.Equal(t, 1, strings.Count(out, "\n"), "exactly one log line")

			require.Len(t, dev.shaderOrder, 1)
			assert.True(t, dev.shaders[dev.shaderOrder[0]].deleted)
			assert.Equal(t, []int{learngl.InfoLogSize}, dev.infoLogMaxLens)
		})
	}
}

func TestBuilderShaderLogTruncated(t *testing.T) {
	long := strings.Repeat("a", learngl.InfoLogSize) + strings.Repeat("b", 100)

	dev := newFakeDevice()
	dev.compileLog = func(learngl.ShaderKind, string) string { return long }
	logger, buf := newTestLogger(slog.LevelInfo)
	b := learngl.NewBuilder(dev, learngl.WithLogger(logger))

	_, err := b.Shader(learngl.FragmentShader, learngl.GLSLSource("void main() {}"))

	var cerr *learngl.CompileError
	require.True(t, errors.As(err, &cerr))
	assert.Len(t, cerr.Log, learngl.InfoLogSize)
	assert.Contains(t, buf.String(), strings.Repeat("a", learngl.InfoLogSize))
	assert.NotContains(t, buf.String(), "b")
}

func TestBuilderShaderTrimsTrailingNUL(t *testing.T) {
	dev := newFakeDevice()
	dev.compileLog = func(learngl.ShaderKind, string) string { return "bad token\n\x00" }
	b := learngl.NewBuilder(dev, learngl.WithLogger(slog.New(slog.DiscardHandler)))

	_, err := b.Shader(learngl.VertexShader, learngl.GLSLSource("x"))

	var cerr *learngl.CompileError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "bad token", cerr.Log)
}

func TestBuilderShaderEmptySource(t *testing.T) {
	dev := newFakeDevice()
	b := learngl.NewBuilder(dev)

	_, err := b.Shader(learngl.VertexShader, learngl.GLSLSource("  \n"))
	assert.ErrorIs(t, err, learngl.ErrEmptySource)
	assert.Empty(t, dev.shaderOrder, "no backend object for empty source")
}

func TestBuilderProgramLinks(t *testing.T) {
	dev := newFakeDevice()
	logger, buf := newTestLogger(slog.LevelInfo)
	b := learngl.NewBuilder(dev, learngl.WithLogger(logger))

	vs, err := b.Shader(learngl.VertexShader, learngl.GLSLSource(learngl.PositionVertexShader))
	require.NoError(t, err)
	fs, err := b.Shader(learngl.FragmentShader, learngl.GLSLSource(learngl.SolidFragmentShader(learngl.ColorOrange)))
	require.NoError(t, err)

	prog, err := b.Program(vs, fs)
	require.NoError(t, err)
	require.NotZero(t, prog)
	assert.Equal(t, []learngl.Shader{vs, fs}, dev.programs[prog].attached)
	assert.False(t, dev.programs[prog].deleted)
	assert.False(t, dev.shaders[vs].deleted, "shaders stay owned by the caller")
	assert.Empty(t, buf.String())
}

func TestBuilderProgramRejectsBadInput(t *testing.T) {
	dev := newFakeDevice()
	b := learngl.NewBuilder(dev)

	_, err := b.Program(1)
	assert.ErrorIs(t, err, learngl.ErrTooFewShaders)

	_, err = b.Program(1, 0)
	assert.ErrorIs(t, err, learngl.ErrInvalidShader)

	assert.Empty(t, dev.programs, "no program object is created for bad input")
}

func TestBuilderProgramLinkFailure(t *testing.T) {
	dev := newFakeDevice()
	dev.linkLog = "error: vertex shader output not read by fragment shader"
	logger, buf := newTestLogger(slog.LevelInfo)
	b := learngl.NewBuilder(dev, learngl.WithLogger(logger))

	vs, _ := b.Shader(learngl.VertexShader, learngl.GLSLSource("v"))
	fs, _ := b.Shader(learngl.FragmentShader, learngl.GLSLSource("f"))
	prog, err := b.Program(vs, fs)

	assert.Zero(t, prog)
	var lerr *learngl.LinkError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, dev.linkLog, lerr.Log)
	assert.Contains(t, buf.String(), "[ERROR] shader program linking failed: "+dev.linkLog)

	require.Len(t, dev.programs, 1)
	for _, p := range dev.programs {
		assert.True(t, p.deleted)
	}
}

const testWGSL = `
@vertex
fn vs_main(@location(0) pos: vec3<f32>) -> @builtin(position) vec4<f32> {
    return vec4<f32>(pos, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 0.5, 0.2, 1.0);
}
`

func TestBuilderShaderTranslatesWGSL(t *testing.T) {
	dev := newFakeDevice()
	b := learngl.NewBuilder(dev, learngl.WithGLVersion(3, 3))

	sh, err := b.Shader(learngl.VertexShader, learngl.WGSLSource(testWGSL, "vs_main"))
	require.NoError(t, err)

	src := dev.shaders[sh].source
	assert.Contains(t, src, "#version 330")
	assert.NotContains(t, src, "@vertex", "the backend only ever sees GLSL")
}

func TestBuilderShaderWGSLSyntaxError(t *testing.T) {
	dev := newFakeDevice()
	logger, buf := newTestLogger(slog.LevelInfo)
	b := learngl.NewBuilder(dev, learngl.WithLogger(logger))

	_, err := b.Shader(learngl.FragmentShader, learngl.WGSLSource("fn (((", ""))

	var cerr *learngl.CompileError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, learngl.FragmentShader, cerr.Kind)
	assert.Contains(t, buf.String(), "[ERROR] fragment shader compilation failed")
	assert.Empty(t, dev.shaderOrder, "translation failures never reach the backend")
}
