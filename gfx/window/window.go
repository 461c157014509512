// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package window

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.1/glfw"
	"github.com/qmcloud/triangle/gfx"
)

// glfwDevice is a GL device bound to the current glfw context.
type glfwDevice interface {
	gfx.Device
	Version() (version, renderer string)
}

// Run opens a window as described by cfg and draws the triangle until the
// window is closed, Escape is pressed or cfg.MaxFrames frames are drawn.
//
// Run must be called from the main OS thread.
func Run(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: initializing glfw: %w", ErrNoDisplay, err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfwClientAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, glfwContextVersionMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, glfwContextVersionMinor)
	if glfwCoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("%w: creating window: %w", ErrNoDisplay, err)
	}
	defer win.Destroy()
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	}

	dev, err := glfwNewDevice()
	if err != nil {
		return fmt.Errorf("window: loading GL: %w", err)
	}
	version, gpu := dev.Version()
	slog.Info("GL context ready", "version", version, "renderer", gpu)

	r, err := newRenderer(dev, cfg)
	if err != nil {
		return err
	}
	defer r.release()

	r.resize(win.GetFramebufferSize())
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		r.resize(w, h)
	})
	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	for n := 0; !win.ShouldClose(); n++ {
		if cfg.MaxFrames > 0 && n >= cfg.MaxFrames {
			break
		}
		r.frame()
		win.SwapBuffers()
		glfw.PollEvents()
	}
	if err := dev.Err(); err != nil {
		return fmt.Errorf("window: drawing: %w", err)
	}
	return nil
}
