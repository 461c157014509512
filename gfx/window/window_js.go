// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js && !wasm

package window

import (
	"log/slog"

	"github.com/gopherjs/gopherjs/js"
	"github.com/qmcloud/triangle/gfx/webgl"
)

// Run appends a canvas to the document body and draws the triangle on every
// animation frame until Escape is pressed or cfg.MaxFrames frames are drawn.
//
// Unlike the desktop version Run returns once the first frame is scheduled;
// the browser drives the loop from then on.
func Run(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	doc := js.Global.Get("document")
	doc.Set("title", cfg.Title)
	canvas := doc.Call("createElement", "canvas")
	canvas.Set("width", cfg.Width)
	canvas.Set("height", cfg.Height)
	if cfg.Hidden {
		canvas.Get("style").Set("display", "none")
	}
	doc.Get("body").Call("appendChild", canvas)

	dev, err := webgl.New(canvas)
	if err != nil {
		return err
	}
	version, gpu := dev.Version()
	slog.Info("GL context ready", "version", version, "renderer", gpu)

	r, err := newRenderer(dev, cfg)
	if err != nil {
		return err
	}
	r.resize(cfg.Width, cfg.Height)

	stop := false
	js.Global.Call("addEventListener", "keydown", func(ev *js.Object) {
		if ev.Get("key").String() == "Escape" {
			stop = true
		}
	})

	n := 0
	var loop func(float64)
	loop = func(float64) {
		if stop || (cfg.MaxFrames > 0 && n >= cfg.MaxFrames) {
			r.release()
			return
		}
		r.frame()
		n++
		js.Global.Call("requestAnimationFrame", loop)
	}
	js.Global.Call("requestAnimationFrame", loop)
	return nil
}
