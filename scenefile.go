package learngl

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// SceneFormat is the encoding of a scene file.
type SceneFormat int

const (
	SceneYAML SceneFormat = iota
	SceneTOML
)

// sceneFile is the on-disk layout of a scene.
//
//	name: two-triangles
//	clear: [0.2, 0.3, 0.3, 1.0]
//	shaders:
//	  position: {kind: vertex, file: position.vert}
//	  orange:   {kind: fragment, source: "..."}
//	draws:
//	  - name: left
//	    vertices: [-0.9, -0.5, 0.0, 0.0, -0.5, 0.0, -0.45, 0.5, 0.0]
//	    vertex: position
//	    fragment: orange
type sceneFile struct {
	Name      string                `yaml:"name" toml:"name"`
	Clear     []float32             `yaml:"clear" toml:"clear"`
	Wireframe bool                  `yaml:"wireframe" toml:"wireframe"`
	Shaders   map[string]shaderFile `yaml:"shaders" toml:"shaders"`
	Draws     []drawFile            `yaml:"draws" toml:"draws"`
}

type shaderFile struct {
	Kind   string `yaml:"kind" toml:"kind"`
	Lang   string `yaml:"lang" toml:"lang"`
	Entry  string `yaml:"entry" toml:"entry"`
	Source string `yaml:"source" toml:"source"`
	File   string `yaml:"file" toml:"file"` // Relative to the scene file
}

type drawFile struct {
	Name     string    `yaml:"name" toml:"name"`
	Vertices []float32 `yaml:"vertices" toml:"vertices"`
	Indices  []uint32  `yaml:"indices" toml:"indices"`
	Vertex   string    `yaml:"vertex" toml:"vertex"`
	Fragment string    `yaml:"fragment" toml:"fragment"`
}

// SceneFormatFromPath picks the format from the file extension.
func SceneFormatFromPath(path string) (SceneFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return SceneYAML, nil
	case ".toml":
		return SceneTOML, nil
	default:
		return 0, fmt.Errorf("unsupported scene file extension %q", filepath.Ext(path))
	}
}

// LoadScene reads a scene from a YAML or TOML file.
// Shader files are resolved relative to the scene file's directory.
func LoadScene(path string) (Scene, error) {
	format, err := SceneFormatFromPath(path)
	if err != nil {
		return Scene{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("reading scene file: %w", err)
	}
	scene, err := ParseScene(data, format, filepath.Dir(path))
	if err != nil {
		return Scene{}, fmt.Errorf("scene file %s: %w", path, err)
	}
	if scene.Name == "" {
		scene.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return scene, nil
}

// ParseScene decodes a scene. baseDir resolves shader file references.
func ParseScene(data []byte, format SceneFormat, baseDir string) (Scene, error) {
	var sf sceneFile
	switch format {
	case SceneYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&sf); err != nil {
			return Scene{}, fmt.Errorf("parsing yaml: %w", err)
		}
	case SceneTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&sf); err != nil {
			return Scene{}, fmt.Errorf("parsing toml: %w", err)
		}
	default:
		return Scene{}, fmt.Errorf("unknown scene format %d", format)
	}
	return sf.resolve(baseDir)
}

func (sf *sceneFile) resolve(baseDir string) (Scene, error) {
	scene := Scene{
		Name:      sf.Name,
		Clear:     ColorBackground,
		Wireframe: sf.Wireframe,
	}
	if len(sf.Clear) > 0 {
		c, err := ColorFromSlice(sf.Clear)
		if err != nil {
			return Scene{}, fmt.Errorf("clear: %w", err)
		}
		scene.Clear = c
	}

	type namedShader struct {
		kind ShaderKind
		src  ShaderSource
	}
	shaders := make(map[string]namedShader, len(sf.Shaders))
	for name, sh := range sf.Shaders {
		kind, err := ParseShaderKind(sh.Kind)
		if err != nil {
			return Scene{}, fmt.Errorf("shader %q: %w", name, err)
		}
		lang, err := ParseShaderLang(sh.Lang)
		if err != nil {
			return Scene{}, fmt.Errorf("shader %q: %w", name, err)
		}
		code, err := sh.code(baseDir)
		if err != nil {
			return Scene{}, fmt.Errorf("shader %q: %w", name, err)
		}
		shaders[name] = namedShader{kind: kind, src: ShaderSource{Lang: lang, Code: code, Entry: sh.Entry}}
	}

	lookup := func(name string, want ShaderKind) (ShaderSource, error) {
		sh, ok := shaders[name]
		if !ok {
			return ShaderSource{}, fmt.Errorf("unknown shader %q", name)
		}
		if sh.kind != want {
			return ShaderSource{}, fmt.Errorf("shader %q is a %s shader, want %s", name, sh.kind, want)
		}
		return sh.src, nil
	}

	for i, d := range sf.Draws {
		name := d.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		vs, err := lookup(d.Vertex, VertexShader)
		if err != nil {
			return Scene{}, fmt.Errorf("draw %q: %w", name, err)
		}
		fs, err := lookup(d.Fragment, FragmentShader)
		if err != nil {
			return Scene{}, fmt.Errorf("draw %q: %w", name, err)
		}
		mesh := Mesh{Vertices: d.Vertices, Indices: d.Indices}
		if err := mesh.Validate(); err != nil {
			return Scene{}, fmt.Errorf("draw %q: %w", name, err)
		}
		scene.Draws = append(scene.Draws, DrawDescriptor{
			Name:     name,
			Mesh:     mesh,
			Vertex:   vs,
			Fragment: fs,
		})
	}
	return scene, nil
}

func (sh shaderFile) code(baseDir string) (string, error) {
	switch {
	case sh.Source != "" && sh.File != "":
		return "", fmt.Errorf("both source and file set")
	case sh.Source != "":
		return sh.Source, nil
	case sh.File != "":
		path := sh.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("load shader file: %w", err)
		}
		return string(b), nil
	default:
		return "", ErrEmptySource
	}
}
