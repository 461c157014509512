// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gfx draws a single triangle through a small, backend-neutral slice
// of the OpenGL API.
//
// Concrete devices live in the gl33 (desktop OpenGL 3.3 core), gles3 (OpenGL
// ES 3) and webgl (GopherJS) subpackages.
package gfx

// ShaderKind identifies a programmable pipeline stage.
type ShaderKind int

const (
	VertexShader ShaderKind = iota
	FragmentShader
)

// String returns the upper-case stage name used in shader diagnostics.
func (k ShaderKind) String() string {
	switch k {
	case VertexShader:
		return "VERTEX"
	case FragmentShader:
		return "FRAGMENT"
	}
	return "UNKNOWN"
}

// Dialect is the GLSL flavor a Device compiles.
type Dialect int

const (
	GLSL330Core Dialect = iota // desktop OpenGL 3.3 core profile
	GLSL300ES                  // OpenGL ES 3.0
	GLSL100                    // WebGL 1 / OpenGL ES 2.0
)

func (d Dialect) String() string {
	switch d {
	case GLSL330Core:
		return "330 core"
	case GLSL300ES:
		return "300 es"
	case GLSL100:
		return "100"
	}
	return "unknown"
}

// Device is the subset of a GL context used to build and draw the triangle.
//
// Object handles are plain numbers and the zero handle means "none", so
// binding 0 unbinds. All methods must be called from the goroutine (and OS
// thread) that owns the context.
type Device interface {
	// Dialect reports the shading language version the device accepts.
	Dialect() Dialect

	CreateShader(kind ShaderKind) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	BindAttribLocation(program, index uint32, name string)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GenBuffer() uint32
	BindArrayBuffer(buffer uint32)
	// ArrayBufferData copies data into the bound array buffer with static
	// draw usage.
	ArrayBufferData(data []float32)
	DeleteBuffer(buffer uint32)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	// VertexAttribFloat describes attribute index as size float components,
	// stride and offset in bytes, sourced from the bound array buffer.
	VertexAttribFloat(index uint32, size, stride int32, offset int)
	EnableVertexAttribArray(index uint32)

	ClearColor(r, g, b, a float32)
	// Clear clears the color buffer.
	Clear()
	Viewport(x, y, width, height int32)
	DrawTriangles(first, count int32)

	// Err returns the first pending GL error, if any, and clears it.
	Err() error
}
