// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package webgl implements gfx.Device on a WebGL 1 context for GopherJS
// builds.
//
// WebGL hands out JavaScript objects rather than integer names, so the device
// keeps a table mapping the numeric handles gfx works with onto those
// objects. WebGL 1 also lacks vertex array objects; they are emulated by
// recording attribute state and replaying it on bind.
package webgl

// table maps non-zero numeric handles to backend objects.
type table[T any] struct {
	next uint32
	m    map[uint32]T
}

func (t *table[T]) add(v T) uint32 {
	if t.m == nil {
		t.m = make(map[uint32]T)
	}
	t.next++
	t.m[t.next] = v
	return t.next
}

// get returns the object for h; the zero handle and unknown handles yield the
// zero value.
func (t *table[T]) get(h uint32) T {
	return t.m[h]
}

func (t *table[T]) remove(h uint32) (T, bool) {
	v, ok := t.m[h]
	if ok {
		delete(t.m, h)
	}
	return v, ok
}
