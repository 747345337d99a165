package learngl

import (
	"errors"
	"fmt"
	"slices"
)

// ComponentsPerVertex is the number of position floats per vertex (x, y, z).
const ComponentsPerVertex = 3

// Mesh is vertex data for a single draw.
// Vertices is a flat list of positions, three floats per vertex.
// When Indices is non-empty the mesh is drawn through an index buffer,
// three indices per triangle.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
}

// Validate checks the layout invariants of the mesh.
func (m Mesh) Validate() error {
	if len(m.Vertices) == 0 {
		return errors.New("mesh has no vertices")
	}
	if len(m.Vertices)%ComponentsPerVertex != 0 {
		return fmt.Errorf("mesh has %d position components, not a multiple of %d",
			len(m.Vertices), ComponentsPerVertex)
	}
	if !m.Indexed() {
		if m.VertexCount()%3 != 0 {
			return fmt.Errorf("mesh has %d vertices, not a whole number of triangles", m.VertexCount())
		}
		return nil
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh has %d indices, not a whole number of triangles", len(m.Indices))
	}
	n := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("index %d at position %d out of range (%d vertices)", idx, i, n)
		}
	}
	return nil
}

// Indexed reports whether the mesh is drawn through an index buffer.
func (m Mesh) Indexed() bool {
	return len(m.Indices) > 0
}

// VertexCount returns the number of vertices in the vertex buffer.
func (m Mesh) VertexCount() int {
	return len(m.Vertices) / ComponentsPerVertex
}

// DrawCount returns the element count passed to the draw call:
// the index count for indexed meshes, the vertex count otherwise.
func (m Mesh) DrawCount() int {
	if m.Indexed() {
		return len(m.Indices)
	}
	return m.VertexCount()
}

// Clone returns a mesh that shares no memory with m.
func (m Mesh) Clone() Mesh {
	return Mesh{Vertices: slices.Clone(m.Vertices), Indices: slices.Clone(m.Indices)}
}

// Vertex returns the position of vertex i.
func (m Mesh) Vertex(i int) [3]float32 {
	o := i * ComponentsPerVertex
	return [3]float32{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
}

// Triangles expands the mesh into the triangles a draw call rasterizes.
// The mesh must be valid.
func (m Mesh) Triangles() [][3][3]float32 {
	if !m.Indexed() {
		tris := make([][3][3]float32, 0, m.VertexCount()/3)
		for i := 0; i+2 < m.VertexCount(); i += 3 {
			tris = append(tris, [3][3]float32{m.Vertex(i), m.Vertex(i + 1), m.Vertex(i + 2)})
		}
		return tris
	}

	tris := make([][3][3]float32, 0, len(m.Indices)/3)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		tris = append(tris, [3][3]float32{
			m.Vertex(int(m.Indices[i])),
			m.Vertex(int(m.Indices[i+1])),
			m.Vertex(int(m.Indices[i+2])),
		})
	}
	return tris
}
