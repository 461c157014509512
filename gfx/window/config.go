// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package window opens a window with a GL context and draws the triangle in
// it every frame until the window is closed.
package window

import (
	"errors"
	"fmt"
)

// Config describes the window to open.
type Config struct {
	Width, Height int
	Title         string

	// ClearColor is the RGBA background behind the triangle.
	ClearColor [4]float32

	// VSync limits buffer swaps to the display refresh rate.
	VSync bool

	// Hidden opens the window without showing it.
	Hidden bool

	// MaxFrames stops the loop after that many frames; 0 runs until the
	// window is closed.
	MaxFrames int
}

// ErrNoDisplay is returned by Run when no window or GL context of the
// required version can be created.
var ErrNoDisplay = errors.New("window: no display or GL context available")

// DefaultConfig returns an 800x600 window with a dark teal background.
func DefaultConfig() Config {
	return Config{
		Width:      800,
		Height:     600,
		Title:      "Triangle",
		ClearColor: [4]float32{0.2, 0.3, 0.3, 1.0},
		VSync:      true,
	}
}

// Validate reports whether c can be used to open a window.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window: invalid size %dx%d", c.Width, c.Height)
	}
	if c.MaxFrames < 0 {
		return fmt.Errorf("window: negative frame limit %d", c.MaxFrames)
	}
	if c.Title == "" {
		return errors.New("window: empty title")
	}
	for _, v := range c.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("window: clear color %v outside [0,1]", c.ClearColor)
		}
	}
	return nil
}
