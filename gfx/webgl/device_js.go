// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js && !wasm

package webgl

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/gopherjs/webgl"
	"github.com/qmcloud/triangle/gfx"
)

// Device adapts a WebGL 1 context to gfx.Device.
type Device struct {
	ctx      *webgl.Context
	shaders  table[*js.Object]
	programs table[*js.Object]
	buffers  table[*js.Object]
	vaos     vaoState
}

var _ gfx.Device = (*Device)(nil)

// New creates a WebGL context on canvas.
func New(canvas *js.Object) (*Device, error) {
	attrs := webgl.DefaultAttributes()
	attrs.Alpha = false
	ctx, err := webgl.NewContext(canvas, attrs)
	if err != nil {
		return nil, err
	}
	return &Device{ctx: ctx}, nil
}

// Version returns the context's version and renderer strings.
func (d *Device) Version() (version, renderer string) {
	return d.ctx.Call("getParameter", d.ctx.Get("VERSION")).String(),
		d.ctx.Call("getParameter", d.ctx.Get("RENDERER")).String()
}

func (d *Device) Dialect() gfx.Dialect { return gfx.GLSL100 }

func (d *Device) CreateShader(kind gfx.ShaderKind) uint32 {
	typ := d.ctx.VERTEX_SHADER
	if kind == gfx.FragmentShader {
		typ = d.ctx.FRAGMENT_SHADER
	}
	return d.shaders.add(d.ctx.CreateShader(typ))
}

func (d *Device) ShaderSource(shader uint32, src string) {
	d.ctx.ShaderSource(d.shaders.get(shader), src)
}

func (d *Device) CompileShader(shader uint32) {
	d.ctx.CompileShader(d.shaders.get(shader))
}

func (d *Device) ShaderCompiled(shader uint32) bool {
	return d.ctx.GetShaderParameterb(d.shaders.get(shader), d.ctx.COMPILE_STATUS)
}

func (d *Device) ShaderInfoLog(shader uint32) string {
	return d.ctx.GetShaderInfoLog(d.shaders.get(shader))
}

func (d *Device) DeleteShader(shader uint32) {
	if sh, ok := d.shaders.remove(shader); ok {
		d.ctx.DeleteShader(sh)
	}
}

func (d *Device) CreateProgram() uint32 {
	return d.programs.add(d.ctx.CreateProgram())
}

func (d *Device) AttachShader(program, shader uint32) {
	d.ctx.AttachShader(d.programs.get(program), d.shaders.get(shader))
}

func (d *Device) BindAttribLocation(program, index uint32, name string) {
	d.ctx.BindAttribLocation(d.programs.get(program), int(index), name)
}

func (d *Device) LinkProgram(program uint32) {
	d.ctx.LinkProgram(d.programs.get(program))
}

func (d *Device) ProgramLinked(program uint32) bool {
	return d.ctx.GetProgramParameterb(d.programs.get(program), d.ctx.LINK_STATUS)
}

func (d *Device) ProgramInfoLog(program uint32) string {
	return d.ctx.GetProgramInfoLog(d.programs.get(program))
}

func (d *Device) UseProgram(program uint32) {
	d.ctx.UseProgram(d.programs.get(program))
}

func (d *Device) DeleteProgram(program uint32) {
	if p, ok := d.programs.remove(program); ok {
		d.ctx.DeleteProgram(p)
	}
}

func (d *Device) GenBuffer() uint32 {
	return d.buffers.add(d.ctx.CreateBuffer())
}

func (d *Device) BindArrayBuffer(buffer uint32) {
	d.vaos.bindBuffer(buffer)
	d.ctx.BindBuffer(d.ctx.ARRAY_BUFFER, d.buffers.get(buffer))
}

func (d *Device) ArrayBufferData(data []float32) {
	d.ctx.BufferData(d.ctx.ARRAY_BUFFER, data, d.ctx.STATIC_DRAW)
}

func (d *Device) DeleteBuffer(buffer uint32) {
	if b, ok := d.buffers.remove(buffer); ok {
		d.vaos.forgetBuffer(buffer)
		d.ctx.DeleteBuffer(b)
	}
}

func (d *Device) GenVertexArray() uint32 { return d.vaos.gen() }

func (d *Device) BindVertexArray(vao uint32) {
	replay, disable := d.vaos.bind(vao)
	for _, i := range disable {
		d.ctx.DisableVertexAttribArray(int(i))
	}
	if len(replay) == 0 {
		return
	}
	for _, a := range replay {
		d.ctx.BindBuffer(d.ctx.ARRAY_BUFFER, d.buffers.get(a.buffer))
		d.ctx.VertexAttribPointer(int(a.index), int(a.size), d.ctx.FLOAT, false, int(a.stride), a.offset)
		if a.enabled {
			d.ctx.EnableVertexAttribArray(int(a.index))
		} else {
			d.ctx.DisableVertexAttribArray(int(a.index))
		}
	}
	d.ctx.BindBuffer(d.ctx.ARRAY_BUFFER, d.buffers.get(d.vaos.arrayBuffer))
}

func (d *Device) DeleteVertexArray(vao uint32) { d.vaos.delete(vao) }

func (d *Device) VertexAttribFloat(index uint32, size, stride int32, offset int) {
	d.vaos.pointer(index, size, stride, offset)
	d.ctx.VertexAttribPointer(int(index), int(size), d.ctx.FLOAT, false, int(stride), offset)
}

func (d *Device) EnableVertexAttribArray(index uint32) {
	d.vaos.enable(index)
	d.ctx.EnableVertexAttribArray(int(index))
}

func (d *Device) ClearColor(r, g, b, a float32) { d.ctx.ClearColor(r, g, b, a) }

func (d *Device) Clear() { d.ctx.Clear(d.ctx.COLOR_BUFFER_BIT) }

func (d *Device) Viewport(x, y, width, height int32) {
	d.ctx.Viewport(int(x), int(y), int(width), int(height))
}

func (d *Device) DrawTriangles(first, count int32) {
	d.ctx.DrawArrays(d.ctx.TRIANGLES, int(first), int(count))
}

func (d *Device) Err() error {
	if e := d.ctx.GetError(); e != d.ctx.NO_ERROR {
		return gfx.GLError(e)
	}
	return nil
}
