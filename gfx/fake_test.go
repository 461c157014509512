// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfx

import "fmt"

// fakeDevice records every call as a short string and hands out sequential
// handles.
type fakeDevice struct {
	dialect Dialect
	calls   []string
	next    uint32

	failCompile map[ShaderKind]string
	failLink    string
	err         error

	sources map[uint32]string
	kinds   map[uint32]ShaderKind
	uploads [][]float32
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		failCompile: map[ShaderKind]string{},
		sources:     map[uint32]string{},
		kinds:       map[uint32]ShaderKind{},
	}
}

func (f *fakeDevice) rec(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeDevice) id() uint32 {
	f.next++
	return f.next
}

func (f *fakeDevice) Dialect() Dialect { return f.dialect }

func (f *fakeDevice) CreateShader(kind ShaderKind) uint32 {
	h := f.id()
	f.kinds[h] = kind
	f.rec("CreateShader(%s)=%d", kind, h)
	return h
}

func (f *fakeDevice) ShaderSource(sh uint32, src string) {
	f.sources[sh] = src
	f.rec("ShaderSource(%d)", sh)
}

func (f *fakeDevice) CompileShader(sh uint32) { f.rec("CompileShader(%d)", sh) }

func (f *fakeDevice) ShaderCompiled(sh uint32) bool {
	_, fail := f.failCompile[f.kinds[sh]]
	return !fail
}

func (f *fakeDevice) ShaderInfoLog(sh uint32) string {
	return f.failCompile[f.kinds[sh]] + "\x00\n"
}

func (f *fakeDevice) DeleteShader(sh uint32) { f.rec("DeleteShader(%d)", sh) }

func (f *fakeDevice) CreateProgram() uint32 {
	h := f.id()
	f.rec("CreateProgram()=%d", h)
	return h
}

func (f *fakeDevice) AttachShader(p, sh uint32) { f.rec("AttachShader(%d,%d)", p, sh) }

func (f *fakeDevice) BindAttribLocation(p, index uint32, name string) {
	f.rec("BindAttribLocation(%d,%d,%s)", p, index, name)
}

func (f *fakeDevice) LinkProgram(p uint32) { f.rec("LinkProgram(%d)", p) }

func (f *fakeDevice) ProgramLinked(uint32) bool { return f.failLink == "" }

func (f *fakeDevice) ProgramInfoLog(uint32) string { return f.failLink }

func (f *fakeDevice) UseProgram(p uint32) { f.rec("UseProgram(%d)", p) }

func (f *fakeDevice) DeleteProgram(p uint32) { f.rec("DeleteProgram(%d)", p) }

func (f *fakeDevice) GenBuffer() uint32 {
	h := f.id()
	f.rec("GenBuffer()=%d", h)
	return h
}

func (f *fakeDevice) BindArrayBuffer(b uint32) { f.rec("BindArrayBuffer(%d)", b) }

func (f *fakeDevice) ArrayBufferData(data []float32) {
	f.uploads = append(f.uploads, append([]float32(nil), data...))
	f.rec("ArrayBufferData(%d)", len(data))
}

func (f *fakeDevice) DeleteBuffer(b uint32) { f.rec("DeleteBuffer(%d)", b) }

func (f *fakeDevice) GenVertexArray() uint32 {
	h := f.id()
	f.rec("GenVertexArray()=%d", h)
	return h
}

func (f *fakeDevice) BindVertexArray(v uint32) { f.rec("BindVertexArray(%d)", v) }

func (f *fakeDevice) DeleteVertexArray(v uint32) { f.rec("DeleteVertexArray(%d)", v) }

func (f *fakeDevice) VertexAttribFloat(index uint32, size, stride int32, offset int) {
	f.rec("VertexAttribFloat(%d,%d,%d,%d)", index, size, stride, offset)
}

func (f *fakeDevice) EnableVertexAttribArray(index uint32) {
	f.rec("EnableVertexAttribArray(%d)", index)
}

func (f *fakeDevice) ClearColor(r, g, b, a float32) { f.rec("ClearColor") }

func (f *fakeDevice) Clear() { f.rec("Clear()") }

func (f *fakeDevice) Viewport(x, y, w, h int32) { f.rec("Viewport(%d,%d,%d,%d)", x, y, w, h) }

func (f *fakeDevice) DrawTriangles(first, count int32) {
	f.rec("DrawTriangles(%d,%d)", first, count)
}

func (f *fakeDevice) Err() error { return f.err }

func (f *fakeDevice) reset() { f.calls = nil }
