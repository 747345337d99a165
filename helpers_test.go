package learngl_test

import (
	"bytes"
	"log/slog"
	"slices"
	"strings"

	"github.com/go-theft-auto/learngl"
)

type fakeShader struct {
	kind    learngl.ShaderKind
	source  string
	log     string
	ok      bool
	deleted bool
}

type fakeProgram struct {
	attached []learngl.Shader
	ok       bool
	deleted  bool
}

// fakeDevice records every call and fails compiles/links on demand.
type fakeDevice struct {
	next uint32

	// compileLog returns a non-empty diagnostic to fail a compile.
	compileLog func(kind learngl.ShaderKind, source string) string
	// linkLog, when non-empty, fails every link with that diagnostic.
	linkLog string

	shaders        map[learngl.Shader]*fakeShader
	shaderOrder    []learngl.Shader
	programs       map[learngl.Program]*fakeProgram
	vertexArrays   map[learngl.VertexArray]learngl.Mesh
	deletedArrays  []learngl.VertexArray
	viewports      [][4]int
	clears         []learngl.Color
	draws          []learngl.DrawCall
	wireframe      bool
	infoLogMaxLens []int
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		shaders:      make(map[learngl.Shader]*fakeShader),
		programs:     make(map[learngl.Program]*fakeProgram),
		vertexArrays: make(map[learngl.VertexArray]learngl.Mesh),
	}
}

func (d *fakeDevice) id() uint32 {
	d.next++
	return d.next
}

func (d *fakeDevice) CreateShader(kind learngl.ShaderKind) learngl.Shader {
	s := learngl.Shader(d.id())
	d.shaders[s] = &fakeShader{kind: kind}
	d.shaderOrder = append(d.shaderOrder, s)
	return s
}

func (d *fakeDevice) CompileShader(s learngl.Shader, source string) {
	sh := d.shaders[s]
	sh.source = source
	sh.ok = true
	if d.compileLog != nil {
		if log := d.compileLog(sh.kind, source); log != "" {
			sh.log = log
			sh.ok = false
		}
	}
}

func (d *fakeDevice) ShaderCompiled(s learngl.Shader) bool { return d.shaders[s].ok }

// ShaderInfoLog ignores maxLen on purpose, like a misbehaving driver.
func (d *fakeDevice) ShaderInfoLog(s learngl.Shader, maxLen int) string {
	d.infoLogMaxLens = append(d.infoLogMaxLens, maxLen)
	return d.shaders[s].log
}

func (d *fakeDevice) DeleteShader(s learngl.Shader) { d.shaders[s].deleted = true }

func (d *fakeDevice) CreateProgram() learngl.Program {
	p := learngl.Program(d.id())
	d.programs[p] = &fakeProgram{}
	return p
}

func (d *fakeDevice) AttachShader(p learngl.Program, s learngl.Shader) {
	d.programs[p].attached = append(d.programs[p].attached, s)
}

func (d *fakeDevice) LinkProgram(p learngl.Program) { d.programs[p].ok = d.linkLog == "" }

func (d *fakeDevice) ProgramLinked(p learngl.Program) bool { return d.programs[p].ok }

func (d *fakeDevice) ProgramInfoLog(p learngl.Program, maxLen int) string {
	d.infoLogMaxLens = append(d.infoLogMaxLens, maxLen)
	return d.linkLog
}

func (d *fakeDevice) DeleteProgram(p learngl.Program) { d.programs[p].deleted = true }

func (d *fakeDevice) CreateVertexArray(m learngl.Mesh) learngl.VertexArray {
	va := learngl.VertexArray(d.id())
	d.vertexArrays[va] = m
	return va
}

func (d *fakeDevice) DeleteVertexArray(va learngl.VertexArray) {
	d.deletedArrays = append(d.deletedArrays, va)
}

func (d *fakeDevice) Viewport(x, y, width, height int) {
	d.viewports = append(d.viewports, [4]int{x, y, width, height})
}

func (d *fakeDevice) Clear(c learngl.Color) { d.clears = append(d.clears, c) }

func (d *fakeDevice) SetWireframe(enabled bool) { d.wireframe = enabled }

func (d *fakeDevice) Draw(call learngl.DrawCall) { d.draws = append(d.draws, call) }

func (d *fakeDevice) liveShaders() []learngl.Shader {
	var live []learngl.Shader
	for _, s := range d.shaderOrder {
		if !d.shaders[s].deleted {
			live = append(live, s)
		}
	}
	return live
}

func (d *fakeDevice) shadersOfKind(kind learngl.ShaderKind) []learngl.Shader {
	var out []learngl.Shader
	for _, s := range d.shaderOrder {
		if d.shaders[s].kind == kind {
			out = append(out, s)
		}
	}
	return out
}

// failSourcesContaining fails compiles whose source contains marker.
func failSourcesContaining(marker, log string) func(learngl.ShaderKind, string) string {
	return func(_ learngl.ShaderKind, source string) string {
		if strings.Contains(source, marker) {
			return log
		}
		return ""
	}
}

// fakeWindow scripts key presses by frame (1-based poll count).
type fakeWindow struct {
	shouldClose   bool
	setCloseCalls int
	polls         int
	swaps         int
	keys          map[int][]learngl.Key
	closeAfter    int // Set the close flag after this many swaps, like a close button
	resize        func(width, height int)
}

func (w *fakeWindow) ShouldClose() bool { return w.shouldClose }

func (w *fakeWindow) SetShouldClose(v bool) {
	w.setCloseCalls++
	w.shouldClose = v
}

func (w *fakeWindow) PollEvents() { w.polls++ }

func (w *fakeWindow) KeyPressed(k learngl.Key) bool {
	return slices.Contains(w.keys[w.polls], k)
}

func (w *fakeWindow) SwapBuffers() {
	w.swaps++
	if w.closeAfter > 0 && w.swaps >= w.closeAfter {
		w.shouldClose = true
	}
}

func (w *fakeWindow) SetResizeCallback(fn func(width, height int)) { w.resize = fn }

func newTestLogger(level slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return learngl.NewLogger(&buf, level), &buf
}
