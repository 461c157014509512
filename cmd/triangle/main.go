// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command triangle opens a window and draws an orange triangle in it.
package main

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/qmcloud/triangle/gfx/window"
)

func init() {
	// glfw and GL calls must stay on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	if err := window.Run(window.DefaultConfig()); err != nil {
		slog.Error("triangle failed", "err", err)
		os.Exit(1)
	}
}
