// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfx

import (
	"fmt"
	"strconv"
	"strings"
)

// PositionAttrib is the vertex attribute location of the aPos input.
const (
	PositionAttrib     = 0
	PositionAttribName = "aPos"
)

// FragColor is the RGBA color every fragment is shaded with. It is baked into
// the fragment source when ShaderSource is called.
var FragColor = [4]float32{1.0, 0.5, 0.2, 1.0}

// ShaderSource returns the hardcoded source for stage kind in dialect d.
func ShaderSource(d Dialect, kind ShaderKind) (string, error) {
	var src string
	switch kind {
	case VertexShader:
		src = vertexSources[d]
	case FragmentShader:
		if tmpl, ok := fragmentSources[d]; ok {
			src = fmt.Sprintf(tmpl, glslVec4(FragColor))
		}
	}
	if src == "" {
		return "", fmt.Errorf("gfx: no %s shader for GLSL %s", kind, d)
	}
	return src, nil
}

var vertexSources = map[Dialect]string{
	GLSL330Core: `#version 330 core
layout (location = 0) in vec3 aPos;
void main()
{
    gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`,
	GLSL300ES: `#version 300 es
layout (location = 0) in vec3 aPos;
void main()
{
    gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`,
	GLSL100: `#version 100
attribute vec3 aPos;
void main()
{
    gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`,
}

var fragmentSources = map[Dialect]string{
	GLSL330Core: `#version 330 core
out vec4 FragColor;
void main()
{
    FragColor = %s;
}
`,
	GLSL300ES: `#version 300 es
precision mediump float;
out vec4 FragColor;
void main()
{
    FragColor = %s;
}
`,
	GLSL100: `#version 100
precision mediump float;
void main()
{
    gl_FragColor = %s;
}
`,
}

// glslVec4 formats c as a GLSL vec4 constructor with float literals.
func glslVec4(c [4]float32) string {
	parts := make([]string, len(c))
	for i, v := range c {
		f := strconv.FormatFloat(float64(v), 'f', -1, 32)
		if !strings.ContainsAny(f, ".eE") {
			f += ".0"
		}
		parts[i] = f
	}
	return "vec4(" + strings.Join(parts, ", ") + ")"
}
