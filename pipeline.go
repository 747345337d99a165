package learngl

import "fmt"

// DrawItem is one built draw: a linked program and the vertex array it reads.
type DrawItem struct {
	Name        string
	Program     Program
	VertexArray VertexArray
	Count       int
	Indexed     bool
}

// Call returns the draw call for the item.
func (it DrawItem) Call() DrawCall {
	return DrawCall{
		Program:     it.Program,
		VertexArray: it.VertexArray,
		Count:       it.Count,
		Indexed:     it.Indexed,
	}
}

// Validate refuses items whose handles were never successfully created.
func (it DrawItem) Validate() error {
	if it.Program == 0 {
		return fmt.Errorf("draw %q: %w", it.Name, ErrInvalidProgram)
	}
	if it.VertexArray == 0 {
		return fmt.Errorf("draw %q: %w", it.Name, ErrInvalidVertexArray)
	}
	return nil
}

// Pipeline is a built scene, ready to be drawn every frame.
// Items are drawn in order.
type Pipeline struct {
	Name      string
	Clear     Color
	Wireframe bool
	Items     []DrawItem
}

// Release deletes the programs and vertex arrays owned by the pipeline.
// Programs shared by several items are deleted once.
func (p *Pipeline) Release(dev Device) {
	if p == nil {
		return
	}
	deleted := make(map[Program]bool, len(p.Items))
	for _, it := range p.Items {
		if it.VertexArray != 0 {
			dev.DeleteVertexArray(it.VertexArray)
		}
		if it.Program != 0 && !deleted[it.Program] {
			dev.DeleteProgram(it.Program)
			deleted[it.Program] = true
		}
	}
	p.Items = nil
}
