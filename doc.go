/*
Package learngl draws simple 2D shapes with OpenGL: a cleared window, a
triangle, an indexed rectangle and two independently colored triangles.

# Overview

A Scene is a list of draw descriptors, each pairing a Mesh with a vertex and a
fragment shader. A Builder compiles and links the shaders through a Device and
uploads the meshes, producing a Pipeline. A FrameLoop then draws the pipeline
into a Window every frame until the window is asked to close.

Device and Window are interfaces; backend/opengl implements them with go-gl
and GLFW. Tests use in-memory fakes, so no GL context is needed.

# Quick Start

	window, err := opengl.OpenWindow(opengl.WindowConfigFrom(learngl.DefaultConfig()))
	if err != nil {
	    os.Exit(69)
	}
	defer window.Close()

	dev := opengl.NewDevice()
	scene, _ := learngl.LookupScene("two-triangles")
	pipeline, err := learngl.NewBuilder(dev).Build(scene)
	if err != nil {
	    // Every compile and link diagnostic was already logged.
	    return err
	}
	defer pipeline.Release(dev)

	loop := learngl.NewFrameLoop(window, dev, pipeline)
	return loop.Run()

# Shaders

Builder.Shader compiles one shader and Builder.Program links two or more of
them. A failed compile or link is logged as an [ERROR] line carrying at most
InfoLogSize bytes of backend diagnostics, the backend object is deleted and a
*CompileError or *LinkError is returned. A failed shader or program never
yields a usable handle.

WGSL sources are translated to GLSL with naga before they reach the backend,
targeting the GL version given by WithGLVersion.

Within one Build, identical sources are compiled once: the two-triangles scene
compiles a single vertex shader shared by both programs. Shader objects are
deleted as soon as every program of the scene is linked.

# Frame Loop

Each frame the loop:

	1. polls window events
	2. checks the quit key (Q by default); the first time it is down the
	   window close flag is set and the loop enters the Closing state
	3. clears to the scene color
	4. issues one DrawCall per pipeline item, carrying that item's program
	   and vertex array handles
	5. swaps buffers

Run returns once the close flag is observed. Window resizes update the
viewport to (0, 0, width, height).

# Scene Files

Scenes can also be loaded from YAML or TOML files with LoadScene; see the
scenes directory for examples of each, including WGSL shaders.
*/
package learngl
