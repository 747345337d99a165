package learngl

import "fmt"

// Color is an RGBA color with float components in the range 0.0-1.0.
type Color struct {
	R, G, B, A float32
}

// Common colors used by the built-in scenes.
var (
	ColorBackground = Color{R: 0.2, G: 0.3, B: 0.3, A: 1.0} // Dark teal clear color
	ColorBlack      = Color{A: 1.0}
	ColorOrange     = Color{R: 1.0, G: 0.5, B: 0.2, A: 1.0}
	ColorYellow     = Color{R: 1.0, G: 1.0, B: 0.0, A: 1.0}
)

// RGBAf creates a color from float components, clamped to 0.0-1.0.
func RGBAf(r, g, b, a float32) Color {
	return Color{
		R: clampf(r, 0, 1),
		G: clampf(g, 0, 1),
		B: clampf(b, 0, 1),
		A: clampf(a, 0, 1),
	}
}

// ColorFromSlice builds a color from 3 or 4 components.
// A missing alpha defaults to 1.
func ColorFromSlice(c []float32) (Color, error) {
	switch len(c) {
	case 3:
		return RGBAf(c[0], c[1], c[2], 1), nil
	case 4:
		return RGBAf(c[0], c[1], c[2], c[3]), nil
	default:
		return Color{}, fmt.Errorf("color needs 3 or 4 components, got %d", len(c))
	}
}

// Slice returns the color as a 4-element slice.
func (c Color) Slice() []float32 {
	return []float32{c.R, c.G, c.B, c.A}
}

// String formats the color as a GLSL vec4 literal.
func (c Color) String() string {
	return fmt.Sprintf("vec4(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}

// Shader is an opaque backend shader object. Zero is never a valid shader.
type Shader uint32

// Program is an opaque backend program object. Zero is never a valid program.
type Program uint32

// VertexArray is an opaque backend vertex array state object, which also owns
// the vertex and index buffers uploaded with it. Zero is never valid.
type VertexArray uint32

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
