package learngl

import (
	"fmt"
	"sort"
)

// Scene is a list of draw descriptors rendered every frame.
type Scene struct {
	Name      string
	Clear     Color
	Wireframe bool
	Draws     []DrawDescriptor
}

// DrawDescriptor pairs a mesh with the shaders it is drawn with.
type DrawDescriptor struct {
	Name     string
	Mesh     Mesh
	Vertex   ShaderSource
	Fragment ShaderSource
}

// PositionVertexShader passes the vec3 position at location 0 through.
const PositionVertexShader = `#version 330 core
layout (location = 0) in vec3 aPos;

void main() {
    gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

// SolidFragmentShader returns a fragment shader that outputs a constant color.
func SolidFragmentShader(c Color) string {
	return fmt.Sprintf(`#version 330 core
out vec4 FragColor;

void main() {
    FragColor = %s;
}
`, c)
}

var (
	triangleMesh = Mesh{
		Vertices: []float32{
			-0.5, -0.5, 0.0,
			0.5, -0.5, 0.0,
			0.0, 0.5, 0.0,
		},
	}

	// Four corners, two triangles sharing the diagonal.
	rectangleMesh = Mesh{
		Vertices: []float32{
			0.5, 0.5, 0.0, // top right
			0.5, -0.5, 0.0, // bottom right
			-0.5, -0.5, 0.0, // bottom left
			-0.5, 0.5, 0.0, // top left
		},
		Indices: []uint32{
			0, 1, 3,
			1, 2, 3,
		},
	}

	leftTriangleMesh = Mesh{
		Vertices: []float32{
			-0.9, -0.5, 0.0,
			0.0, -0.5, 0.0,
			-0.45, 0.5, 0.0,
		},
	}

	rightTriangleMesh = Mesh{
		Vertices: []float32{
			0.0, -0.5, 0.0,
			0.9, -0.5, 0.0,
			0.45, 0.5, 0.0,
		},
	}
)

var builtinScenes = map[string]func() Scene{
	"window": func() Scene {
		return Scene{Name: "window", Clear: ColorBackground}
	},
	"triangle": func() Scene {
		return Scene{
			Name:  "triangle",
			Clear: ColorBackground,
			Draws: []DrawDescriptor{{
				Name:     "triangle",
				Mesh:     triangleMesh,
				Vertex:   GLSLSource(PositionVertexShader),
				Fragment: GLSLSource(SolidFragmentShader(ColorOrange)),
			}},
		}
	},
	"rectangle": func() Scene {
		return Scene{
			Name:  "rectangle",
			Clear: ColorBackground,
			Draws: []DrawDescriptor{{
				Name:     "rectangle",
				Mesh:     rectangleMesh,
				Vertex:   GLSLSource(PositionVertexShader),
				Fragment: GLSLSource(SolidFragmentShader(ColorOrange)),
			}},
		}
	},
	"two-triangles": func() Scene {
		return Scene{
			Name:  "two-triangles",
			Clear: ColorBackground,
			Draws: []DrawDescriptor{
				{
					Name:     "left",
					Mesh:     leftTriangleMesh,
					Vertex:   GLSLSource(PositionVertexShader),
					Fragment: GLSLSource(SolidFragmentShader(ColorOrange)),
				},
				{
					Name:     "right",
					Mesh:     rightTriangleMesh,
					Vertex:   GLSLSource(PositionVertexShader),
					Fragment: GLSLSource(SolidFragmentShader(ColorYellow)),
				},
			},
		}
	},
}

// Scenes returns the names of the built-in scenes, sorted.
func Scenes() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupScene returns a fresh copy of the named built-in scene.
func LookupScene(name string) (Scene, error) {
	fn, ok := builtinScenes[name]
	if !ok {
		return Scene{}, fmt.Errorf("unknown scene %q (available: %v)", name, Scenes())
	}
	scene := fn()
	for i := range scene.Draws {
		scene.Draws[i].Mesh = scene.Draws[i].Mesh.Clone()
	}
	return scene, nil
}
