// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfx

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidVertices is returned when vertex data is empty, is not made of
// whole xyz triples, or leaves the normalized device coordinate cube.
var ErrInvalidVertices = errors.New("gfx: invalid vertex data")

// CompileError reports a shader that failed to compile.
type CompileError struct {
	Kind ShaderKind
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("ERROR::SHADER::%s::COMPILATION_FAILED\n%s", e.Kind, e.Log)
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "ERROR::SHADER::PROGRAM::LINKING_FAILED\n" + e.Log
}

// GLError is a raw error code returned by the driver.
type GLError uint32

func (e GLError) Error() string {
	switch e {
	case 0x0500:
		return "gl: invalid enum"
	case 0x0501:
		return "gl: invalid value"
	case 0x0502:
		return "gl: invalid operation"
	case 0x0505:
		return "gl: out of memory"
	case 0x0506:
		return "gl: invalid framebuffer operation"
	}
	return fmt.Sprintf("gl: error 0x%04X", uint32(e))
}

// CleanLog trims the trailing NUL bytes and whitespace drivers leave in info
// logs.
func CleanLog(s string) string {
	return strings.TrimRight(s, "\x00 \t\r\n")
}
