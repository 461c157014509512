// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfx

import (
	"fmt"

	"github.com/chewxy/math32"
)

// TriangleVertices are three xyz positions in normalized device coordinates.
var TriangleVertices = [9]float32{
	-0.5, -0.5, 0.0,
	0.5, -0.5, 0.0,
	0.0, 0.5, 0.0,
}

const (
	positionSize   = 3
	positionStride = positionSize * 4 // sizeof(float32)
)

// ValidateVertices checks that v holds whole xyz triples inside the [-1,1]
// cube.
func ValidateVertices(v []float32) error {
	if len(v) == 0 || len(v)%positionSize != 0 {
		return fmt.Errorf("%w: %d floats is not a whole number of positions", ErrInvalidVertices, len(v))
	}
	for i, f := range v {
		if math32.IsNaN(f) || math32.Abs(f) > 1 {
			return fmt.Errorf("%w: component %d (%v) outside [-1,1]", ErrInvalidVertices, i, f)
		}
	}
	return nil
}

// Triangle is an uploaded mesh together with the program that shades it.
// It is created once and only read while drawing.
type Triangle struct {
	Program uint32
	VAO     uint32
	VBO     uint32
	count   int32
}

// NewTriangle builds the default program and uploads TriangleVertices.
func NewTriangle(d Device) (*Triangle, error) {
	return NewMesh(d, TriangleVertices[:])
}

// NewMesh builds the default program and uploads vertices, which are drawn
// as a list of triangles.
func NewMesh(d Device, vertices []float32) (*Triangle, error) {
	if err := ValidateVertices(vertices); err != nil {
		return nil, err
	}
	prog, err := BuildDefaultProgram(d)
	if err != nil {
		return nil, err
	}
	t := &Triangle{
		Program: prog,
		count:   int32(len(vertices) / positionSize),
	}

	t.VAO = d.GenVertexArray()
	d.BindVertexArray(t.VAO)

	t.VBO = d.GenBuffer()
	d.BindArrayBuffer(t.VBO)
	d.ArrayBufferData(vertices)

	d.VertexAttribFloat(PositionAttrib, positionSize, positionStride, 0)
	d.EnableVertexAttribArray(PositionAttrib)

	// The attribute already captured the buffer, so both may be unbound.
	d.BindArrayBuffer(0)
	d.BindVertexArray(0)

	if err := d.Err(); err != nil {
		t.Release(d)
		return nil, fmt.Errorf("gfx: uploading triangle: %w", err)
	}
	return t, nil
}

// Count returns the number of vertices drawn.
func (t *Triangle) Count() int32 {
	return t.count
}

// Draw issues the draw call for the triangle.
func (t *Triangle) Draw(d Device) {
	d.UseProgram(t.Program)
	d.BindVertexArray(t.VAO)
	d.DrawTriangles(0, t.count)
}

// Release deletes the GPU objects owned by t. It is safe to call twice.
func (t *Triangle) Release(d Device) {
	if t.VAO != 0 {
		d.DeleteVertexArray(t.VAO)
		t.VAO = 0
	}
	if t.VBO != 0 {
		d.DeleteBuffer(t.VBO)
		t.VBO = 0
	}
	if t.Program != 0 {
		d.DeleteProgram(t.Program)
		t.Program = 0
	}
}
