// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js && !gles3

package window

import (
	"github.com/go-gl/glfw/v3.1/glfw"
	"github.com/qmcloud/triangle/gfx/gl33"
)

const (
	glfwClientAPI           = glfw.OpenGLAPI
	glfwContextVersionMajor = 3
	glfwContextVersionMinor = 3
	glfwCoreProfile         = true
)

func glfwNewDevice() (glfwDevice, error) {
	return gl33.New()
}
