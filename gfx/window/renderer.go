// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package window

import (
	"fmt"

	"github.com/qmcloud/triangle/gfx"
)

// renderer owns the triangle and draws one frame at a time.
type renderer struct {
	dev gfx.Device
	tri *gfx.Triangle
}

func newRenderer(dev gfx.Device, cfg Config) (*renderer, error) {
	tri, err := gfx.NewTriangle(dev)
	if err != nil {
		return nil, fmt.Errorf("window: setting up triangle: %w", err)
	}
	c := cfg.ClearColor
	dev.ClearColor(c[0], c[1], c[2], c[3])
	return &renderer{dev: dev, tri: tri}, nil
}

// resize matches the viewport to a framebuffer of w by h pixels. A zero size
// (minimized window) is ignored.
func (r *renderer) resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	r.dev.Viewport(0, 0, int32(w), int32(h))
}

func (r *renderer) frame() {
	r.dev.Clear()
	r.tri.Draw(r.dev)
}

func (r *renderer) release() {
	r.tri.Release(r.dev)
}
