// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webgl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	var tb table[string]
	a := tb.add("a")
	b := tb.add("b")
	assert.Equal(t, uint32(1), a)
	assert.Equal(t, uint32(2), b)
	assert.Equal(t, "b", tb.get(b))
	assert.Equal(t, "", tb.get(0))

	v, ok := tb.remove(a)
	assert.True(t, ok)
	assert.Equal(t, "a", v)
	_, ok = tb.remove(a)
	assert.False(t, ok)
	assert.Len(t, tb.m, 1)

	// handles are never reused
	assert.Equal(t, uint32(3), tb.add("c"))
}

func TestVAOReplay(t *testing.T) {
	var s vaoState
	vao := s.gen()

	// pointers set with no array bound are not recorded
	s.bindBuffer(7)
	s.pointer(0, 3, 12, 0)
	replay, disable := s.bind(vao)
	assert.Empty(t, replay)
	assert.Empty(t, disable)

	s.bindBuffer(7)
	s.pointer(1, 2, 8, 4)
	s.pointer(0, 3, 12, 0)
	s.enable(0)
	s.bindBuffer(0)

	replay, disable = s.bind(0)
	assert.Empty(t, replay)
	assert.Equal(t, []uint32{0}, disable)

	replay, disable = s.bind(vao)
	assert.Equal(t, []attrib{
		{index: 0, buffer: 7, size: 3, stride: 12, offset: 0, enabled: true},
		{index: 1, buffer: 7, size: 2, stride: 8, offset: 4},
	}, replay)
	assert.Empty(t, disable)
	assert.Equal(t, uint32(0), s.arrayBuffer)
}

func TestVAODisablesPreviousAttribs(t *testing.T) {
	var s vaoState
	a, b := s.gen(), s.gen()

	s.bind(a)
	s.bindBuffer(1)
	s.pointer(0, 3, 24, 0)
	s.pointer(1, 3, 24, 12)
	s.enable(0)
	s.enable(1)

	replay, disable := s.bind(b)
	assert.Empty(t, replay)
	assert.Equal(t, []uint32{0, 1}, disable)
	s.bindBuffer(2)
	s.pointer(0, 3, 12, 0)
	s.enable(0)

	replay, disable = s.bind(a)
	assert.Len(t, replay, 2)
	assert.Empty(t, disable)

	replay, disable = s.bind(b)
	assert.Equal(t, []attrib{{index: 0, buffer: 2, size: 3, stride: 12, enabled: true}}, replay)
	assert.Equal(t, []uint32{1}, disable)

	replay, disable = s.bind(0)
	assert.Empty(t, replay)
	assert.Equal(t, []uint32{0}, disable)
}

func TestVAOUnknownBind(t *testing.T) {
	var s vaoState
	replay, disable := s.bind(99)
	assert.Nil(t, replay)
	assert.Nil(t, disable)
	assert.Equal(t, uint32(0), s.bound)
}

func TestVAODelete(t *testing.T) {
	var s vaoState
	vao := s.gen()
	s.bind(vao)
	s.bindBuffer(3)
	s.pointer(0, 3, 12, 0)
	s.enable(0)

	s.forgetBuffer(3)
	replay, disable := s.bind(vao)
	assert.Empty(t, replay)
	assert.Equal(t, []uint32{0}, disable)
	assert.Equal(t, uint32(0), s.arrayBuffer)

	s.delete(vao)
	assert.Equal(t, uint32(0), s.bound)
	replay, _ = s.bind(vao)
	assert.Nil(t, replay)
}
