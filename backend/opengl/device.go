// Package opengl provides the OpenGL 3.3 core and GLFW backend for learngl.
package opengl

import (
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/learngl"
)

const floatSize = 4

// Device implements learngl.Device with OpenGL.
// The GL context must be current on the calling thread.
type Device struct {
	// Buffers owned by each vertex array: VBO first, then EBO if indexed.
	buffers map[learngl.VertexArray][]uint32
}

var _ learngl.Device = (*Device)(nil)

// NewDevice creates a device for the current GL context.
func NewDevice() *Device {
	return &Device{buffers: make(map[learngl.VertexArray][]uint32)}
}

func (d *Device) CreateShader(kind learngl.ShaderKind) learngl.Shader {
	xtype := uint32(gl.VERTEX_SHADER)
	if kind == learngl.FragmentShader {
		xtype = gl.FRAGMENT_SHADER
	}
	return learngl.Shader(gl.CreateShader(xtype))
}

func (d *Device) CompileShader(s learngl.Shader, source string) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(uint32(s), 1, csource, nil)
	free()
	gl.CompileShader(uint32(s))
}

func (d *Device) ShaderCompiled(s learngl.Shader) bool {
	var status int32
	gl.GetShaderiv(uint32(s), gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (d *Device) ShaderInfoLog(s learngl.Shader, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	log := make([]byte, maxLen)
	var n int32
	gl.GetShaderInfoLog(uint32(s), int32(maxLen), &n, &log[0])
	return string(log[:n])
}

func (d *Device) DeleteShader(s learngl.Shader) {
	gl.DeleteShader(uint32(s))
}

func (d *Device) CreateProgram() learngl.Program {
	return learngl.Program(gl.CreateProgram())
}

func (d *Device) AttachShader(p learngl.Program, s learngl.Shader) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (d *Device) LinkProgram(p learngl.Program) {
	gl.LinkProgram(uint32(p))
}

func (d *Device) ProgramLinked(p learngl.Program) bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (d *Device) ProgramInfoLog(p learngl.Program, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	log := make([]byte, maxLen)
	var n int32
	gl.GetProgramInfoLog(uint32(p), int32(maxLen), &n, &log[0])
	return string(log[:n])
}

func (d *Device) DeleteProgram(p learngl.Program) {
	gl.DeleteProgram(uint32(p))
}

// CreateVertexArray uploads the mesh positions (and indices) with
// STATIC_DRAW and maps them to attribute location 0.
func (d *Device) CreateVertexArray(m learngl.Mesh) learngl.VertexArray {
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*floatSize, gl.Ptr(m.Vertices), gl.STATIC_DRAW)
	owned := []uint32{vbo}

	if m.Indexed() {
		var ebo uint32
		gl.GenBuffers(1, &ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)
		owned = append(owned, ebo)
	}

	gl.VertexAttribPointerWithOffset(0, learngl.ComponentsPerVertex, gl.FLOAT, false,
		learngl.ComponentsPerVertex*floatSize, 0)
	gl.EnableVertexAttribArray(0)

	// The element buffer binding is part of the VAO, so only the array
	// buffer is unbound before the VAO.
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	va := learngl.VertexArray(vao)
	d.buffers[va] = owned
	return va
}

func (d *Device) DeleteVertexArray(va learngl.VertexArray) {
	vao := uint32(va)
	gl.DeleteVertexArrays(1, &vao)
	if bufs := d.buffers[va]; len(bufs) > 0 {
		gl.DeleteBuffers(int32(len(bufs)), &bufs[0])
	}
	delete(d.buffers, va)
}

func (d *Device) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (d *Device) Clear(c learngl.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *Device) SetWireframe(enabled bool) {
	mode := uint32(gl.FILL)
	if enabled {
		mode = gl.LINE
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, mode)
}

func (d *Device) Draw(call learngl.DrawCall) {
	gl.UseProgram(uint32(call.Program))
	gl.BindVertexArray(uint32(call.VertexArray))
	if call.Indexed {
		gl.DrawElements(gl.TRIANGLES, int32(call.Count), gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, int32(call.Count))
	}
	gl.BindVertexArray(0)
}

// ReadPixels reads the lower-left width x height region of the framebuffer
// into a top-down RGBA image.
func (d *Device) ReadPixels(width, height int) *image.RGBA {
	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowLen := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowLen
		copy(img.Pix[y*rowLen:(y+1)*rowLen], pixels[src:src+rowLen])
	}
	return img
}
