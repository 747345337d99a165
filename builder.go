package learngl

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Builder compiles shaders, links programs and uploads meshes through a Device.
type Builder struct {
	dev     Device
	log     *slog.Logger
	glMajor int
	glMinor int
}

// NewBuilder creates a builder on top of dev.
func NewBuilder(dev Device, opts ...Option) *Builder {
	s := applyOptions(opts)
	return &Builder{
		dev:     dev,
		log:     s.logger,
		glMajor: s.glMajor,
		glMinor: s.glMinor,
	}
}

// Shader compiles src as a shader of the given kind.
//
// On failure the diagnostic is logged with the shader kind, the backend object
// is deleted and a *CompileError is returned; the returned handle is zero.
func (b *Builder) Shader(kind ShaderKind, src ShaderSource) (Shader, error) {
	if strings.TrimSpace(src.Code) == "" {
		return 0, fmt.Errorf("%s shader: %w", kind, ErrEmptySource)
	}

	code := src.Code
	if src.Lang == WGSL {
		var err error
		code, err = translateWGSL(src, b.glMajor, b.glMinor)
		if err != nil {
			cerr := &CompileError{Kind: kind, Log: truncateInfoLog(err.Error())}
			b.log.Error(cerr.Error(), "kind", kind.String(), "lang", src.Lang.String())
			return 0, cerr
		}
	}

	sh := b.dev.CreateShader(kind)
	b.dev.CompileShader(sh, code)
	if !b.dev.ShaderCompiled(sh) {
		cerr := &CompileError{Kind: kind, Log: truncateInfoLog(b.dev.ShaderInfoLog(sh, InfoLogSize))}
		b.log.Error(cerr.Error(), "kind", kind.String())
		b.dev.DeleteShader(sh)
		return 0, cerr
	}

	b.log.Debug("compiled shader", "kind", kind.String(), "handle", uint32(sh))
	return sh, nil
}

// Program links the given shaders into a new program.
//
// At least two valid shader handles are required. On link failure the
// diagnostic is logged, the program is deleted and a *LinkError is returned.
// The shaders are not released; the caller owns them.
func (b *Builder) Program(shaders ...Shader) (Program, error) {
	if len(shaders) < 2 {
		return 0, ErrTooFewShaders
	}
	for i, sh := range shaders {
		if sh == 0 {
			return 0, fmt.Errorf("shader %d: %w", i, ErrInvalidShader)
		}
	}

	prog := b.dev.CreateProgram()
	for _, sh := range shaders {
		b.dev.AttachShader(prog, sh)
	}
	b.dev.LinkProgram(prog)
	if !b.dev.ProgramLinked(prog) {
		lerr := &LinkError{Log: truncateInfoLog(b.dev.ProgramInfoLog(prog, InfoLogSize))}
		b.log.Error(lerr.Error())
		b.dev.DeleteProgram(prog)
		return 0, lerr
	}

	b.log.Debug("linked program", "handle", uint32(prog), "shaders", len(shaders))
	return prog, nil
}

// SceneError wraps a failure of one draw of a scene.
type SceneError struct {
	Scene string
	Draw  string
	Err   error
}

func (e *SceneError) Error() string {
	return fmt.Sprintf("scene %q draw %q: %v", e.Scene, e.Draw, e.Err)
}

func (e *SceneError) Unwrap() error { return e.Err }

type shaderKey struct {
	kind  ShaderKind
	lang  ShaderLang
	entry string
	code  string
}

type shaderResult struct {
	shader Shader
	err    error
}

// Build turns a scene into a pipeline.
//
// Identical shader sources are compiled once and shared between draws.
// All shader objects are released once every program has been linked.
// If any draw fails, everything created so far is released and the
// errors of all failed draws are returned joined.
func (b *Builder) Build(scene Scene) (*Pipeline, error) {
	p := &Pipeline{
		Name:      scene.Name,
		Clear:     scene.Clear,
		Wireframe: scene.Wireframe,
		Items:     make([]DrawItem, 0, len(scene.Draws)),
	}

	cache := make(map[shaderKey]shaderResult)
	defer func() {
		for _, r := range cache {
			if r.shader != 0 {
				b.dev.DeleteShader(r.shader)
			}
		}
	}()
	shader := func(kind ShaderKind, src ShaderSource) (Shader, error) {
		key := shaderKey{kind: kind, lang: src.Lang, entry: src.Entry, code: src.Code}
		if r, ok := cache[key]; ok {
			return r.shader, r.err
		}
		sh, err := b.Shader(kind, src)
		cache[key] = shaderResult{shader: sh, err: err}
		return sh, err
	}

	var errs []error
	for i, d := range scene.Draws {
		name := d.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		fail := func(err error) {
			errs = append(errs, &SceneError{Scene: scene.Name, Draw: name, Err: err})
		}

		if err := d.Mesh.Validate(); err != nil {
			fail(err)
			continue
		}
		vs, verr := shader(VertexShader, d.Vertex)
		fs, ferr := shader(FragmentShader, d.Fragment)
		if verr != nil || ferr != nil {
			fail(errors.Join(verr, ferr))
			continue
		}
		prog, err := b.Program(vs, fs)
		if err != nil {
			fail(err)
			continue
		}

		p.Items = append(p.Items, DrawItem{
			Name:        name,
			Program:     prog,
			VertexArray: b.dev.CreateVertexArray(d.Mesh),
			Count:       d.Mesh.DrawCount(),
			Indexed:     d.Mesh.Indexed(),
		})
	}

	if len(errs) > 0 {
		p.Release(b.dev)
		return nil, errors.Join(errs...)
	}

	b.log.Debug("built scene", "scene", scene.Name, "draws", len(p.Items))
	return p, nil
}
