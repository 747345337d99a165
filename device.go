package learngl

// Device is the graphics backend collaborator.
//
// Implementations wrap a concrete API (see backend/opengl). Every call is made
// from the thread that owns the graphics context.
type Device interface {
	// CreateShader allocates a shader object of the given kind.
	CreateShader(kind ShaderKind) Shader
	// CompileShader sets the shader source and compiles it.
	CompileShader(s Shader, source string)
	// ShaderCompiled reports the compile status flag.
	ShaderCompiled(s Shader) bool
	// ShaderInfoLog returns at most maxLen bytes of compile diagnostics.
	ShaderInfoLog(s Shader, maxLen int) string
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	// ProgramLinked reports the link status flag.
	ProgramLinked(p Program) bool
	// ProgramInfoLog returns at most maxLen bytes of link diagnostics.
	ProgramInfoLog(p Program, maxLen int) string
	DeleteProgram(p Program)

	// CreateVertexArray uploads the mesh into new buffers and records the
	// attribute layout (location 0, three floats per vertex).
	CreateVertexArray(m Mesh) VertexArray
	DeleteVertexArray(va VertexArray)

	Viewport(x, y, width, height int)
	Clear(c Color)
	SetWireframe(enabled bool)

	// Draw binds the call's program and vertex array and issues one draw.
	Draw(call DrawCall)
}

// DrawCall carries every handle a single draw needs, so no binding state
// leaks from one draw to the next.
type DrawCall struct {
	Program     Program
	VertexArray VertexArray
	Count       int  // Vertices for ranged draws, indices for indexed draws
	Indexed     bool // Draw through the index buffer
}
