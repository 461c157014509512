// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfx

import "strings"

// CString NUL-terminates s for passing to the C GL API.
func CString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// InfoLog reads a shader or program info log of the given reported length.
// read is handed a buffer of size bytes to fill.
func InfoLog(length int32, read func(size int32, buf *uint8)) string {
	if length <= 0 {
		return ""
	}
	buf := make([]uint8, length+1)
	read(length, &buf[0])
	return CleanLog(string(buf))
}
