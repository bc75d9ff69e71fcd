// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// libheckel exposes the diff of two string arrays to native callers.
//
// Build with:
//
//	go build -buildmode=c-shared -o libheckel.so ./internal/cmd/libheckel
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"znkr.io/heckel"
	"znkr.io/heckel/internal/cstrs"
)

// HeckelDiffStrings diffs two arrays of NUL-terminated UTF-8 strings and returns the number of
// changes. On failure it returns -1 and, if errOut is not NULL, stores a message in *errOut that
// must be released with HeckelFree.
//
//export HeckelDiffStrings
func HeckelDiffStrings(oldp **C.char, oldLen C.int, newp **C.char, newLen C.int, errOut **C.char) C.int {
	n, err := diffStrings(unsafe.Pointer(oldp), int(oldLen), unsafe.Pointer(newp), int(newLen))
	if err != nil {
		if errOut != nil {
			*errOut = C.CString(err.Error())
		}
		return -1
	}
	return C.int(n)
}

// HeckelFree releases a string allocated by this library.
//
//export HeckelFree
func HeckelFree(p *C.char) {
	C.free(unsafe.Pointer(p))
}

func diffStrings(oldp unsafe.Pointer, oldLen int, newp unsafe.Pointer, newLen int) (int, error) {
	x, err := cstrs.DecodeArray(oldp, oldLen)
	if err != nil {
		return 0, err
	}
	y, err := cstrs.DecodeArray(newp, newLen)
	if err != nil {
		return 0, err
	}
	return len(heckel.Diff(x, y)), nil
}

func main() {}
