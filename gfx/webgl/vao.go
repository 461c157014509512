// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webgl

import "sort"

// attrib is one recorded vertex attribute pointer.
type attrib struct {
	index   uint32
	buffer  uint32
	size    int32
	stride  int32
	offset  int
	enabled bool
}

type vertexArray struct {
	attribs map[uint32]*attrib
}

// vaoState emulates vertex array objects on top of WebGL 1's global
// attribute state.
type vaoState struct {
	arrays      table[*vertexArray]
	bound       uint32
	arrayBuffer uint32

	// live holds the attribute indices currently enabled on the context.
	live map[uint32]bool
}

func (s *vaoState) gen() uint32 {
	return s.arrays.add(&vertexArray{attribs: make(map[uint32]*attrib)})
}

// bind makes vao current. It returns the attributes that must be replayed
// onto the context, ordered by index, and the indices left enabled by the
// previous array that must now be disabled. Binding 0 or an unknown array
// restores the default state, with every attribute disabled.
func (s *vaoState) bind(vao uint32) (replay []attrib, disable []uint32) {
	s.bound = vao
	va := s.arrays.get(vao)
	if va == nil {
		s.bound = 0
	}
	next := make(map[uint32]bool)
	if va != nil {
		for _, a := range va.attribs {
			if a.buffer == 0 {
				continue
			}
			replay = append(replay, *a)
			if a.enabled {
				next[a.index] = true
			}
		}
	}
	for i := range s.live {
		if !next[i] {
			disable = append(disable, i)
		}
	}
	s.live = next
	sort.Slice(replay, func(i, j int) bool { return replay[i].index < replay[j].index })
	sort.Slice(disable, func(i, j int) bool { return disable[i] < disable[j] })
	return replay, disable
}

func (s *vaoState) bindBuffer(buf uint32) {
	s.arrayBuffer = buf
}

func (s *vaoState) slot(index uint32) *attrib {
	va := s.arrays.get(s.bound)
	if va == nil {
		return nil
	}
	a, ok := va.attribs[index]
	if !ok {
		a = &attrib{index: index}
		va.attribs[index] = a
	}
	return a
}

// pointer records an attribute pointer against the bound array and buffer.
func (s *vaoState) pointer(index uint32, size, stride int32, offset int) {
	if a := s.slot(index); a != nil {
		a.buffer = s.arrayBuffer
		a.size, a.stride, a.offset = size, stride, offset
	}
}

func (s *vaoState) enable(index uint32) {
	if s.live == nil {
		s.live = make(map[uint32]bool)
	}
	s.live[index] = true
	if a := s.slot(index); a != nil {
		a.enabled = true
	}
}

func (s *vaoState) delete(vao uint32) {
	s.arrays.remove(vao)
	if s.bound == vao {
		s.bound = 0
	}
}

// forgetBuffer drops references to a deleted buffer.
func (s *vaoState) forgetBuffer(buf uint32) {
	for _, va := range s.arrays.m {
		for _, a := range va.attribs {
			if a.buffer == buf {
				a.buffer = 0
			}
		}
	}
	if s.arrayBuffer == buf {
		s.arrayBuffer = 0
	}
}
