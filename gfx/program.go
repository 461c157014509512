// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfx

// CompileShader creates and compiles a shader of the given kind. On failure
// the shader object is deleted and a *CompileError carrying the driver's info
// log is returned.
func CompileShader(d Device, kind ShaderKind, src string) (uint32, error) {
	sh := d.CreateShader(kind)
	d.ShaderSource(sh, src)
	d.CompileShader(sh)
	if !d.ShaderCompiled(sh) {
		log := CleanLog(d.ShaderInfoLog(sh))
		d.DeleteShader(sh)
		return 0, &CompileError{Kind: kind, Log: log}
	}
	return sh, nil
}

// BuildProgram compiles the vertex and fragment sources and links them into
// a program. The intermediate shader objects are always deleted before
// returning.
func BuildProgram(d Device, vertSrc, fragSrc string) (uint32, error) {
	vs, err := CompileShader(d, VertexShader, vertSrc)
	if err != nil {
		return 0, err
	}
	defer d.DeleteShader(vs)

	fs, err := CompileShader(d, FragmentShader, fragSrc)
	if err != nil {
		return 0, err
	}
	defer d.DeleteShader(fs)

	prog := d.CreateProgram()
	d.AttachShader(prog, vs)
	d.AttachShader(prog, fs)
	// GLSL 100 has no layout qualifiers; bind the location explicitly.
	d.BindAttribLocation(prog, PositionAttrib, PositionAttribName)
	d.LinkProgram(prog)
	if !d.ProgramLinked(prog) {
		log := CleanLog(d.ProgramInfoLog(prog))
		d.DeleteProgram(prog)
		return 0, &LinkError{Log: log}
	}
	return prog, nil
}

// BuildDefaultProgram builds the hardcoded orange program in the device's
// dialect.
func BuildDefaultProgram(d Device) (uint32, error) {
	vert, err := ShaderSource(d.Dialect(), VertexShader)
	if err != nil {
		return 0, err
	}
	frag, err := ShaderSource(d.Dialect(), FragmentShader)
	if err != nil {
		return 0, err
	}
	return BuildProgram(d, vert, frag)
}
