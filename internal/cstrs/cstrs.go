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

// Package cstrs decodes arrays of C strings handed over by native callers.
//
// The strings are copied into Go memory, the caller keeps ownership of the input. Malformed input
// is reported as a [*DecodeError], never by terminating the process.
package cstrs

import (
	"fmt"
	"unicode/utf8"
	"unsafe"

	"github.com/pkg/errors"
)

var (
	// ErrNilPointer is reported for a nil string pointer or a nil array with a positive length.
	ErrNilPointer = errors.New("nil pointer")

	// ErrInvalidUTF8 is reported for strings that are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")

	// ErrLength is reported for negative array lengths.
	ErrLength = errors.New("invalid length")
)

// DecodeError describes a failure to decode an element of a C string array.
type DecodeError struct {
	Index int // Index of the element in the array, -1 if the array itself is invalid
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Index < 0 {
		return "cstrs: " + e.Err.Error()
	}
	return fmt.Sprintf("cstrs: element %d: %v", e.Index, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// DecodeArray decodes n NUL-terminated strings from the C array base, i.e. a char**.
func DecodeArray(base unsafe.Pointer, n int) ([]string, error) {
	switch {
	case n < 0:
		return nil, &DecodeError{Index: -1, Err: errors.Wrapf(ErrLength, "%d", n)}
	case n == 0:
		return []string{}, nil
	case base == nil:
		return nil, &DecodeError{Index: -1, Err: ErrNilPointer}
	}
	return Decode(unsafe.Slice((**byte)(base), n))
}

// Decode decodes the NUL-terminated strings ptrs point to.
func Decode(ptrs []*byte) ([]string, error) {
	out := make([]string, len(ptrs))
	for i, p := range ptrs {
		s, err := decode(p)
		if err != nil {
			return nil, &DecodeError{Index: i, Err: err}
		}
		out[i] = s
	}
	return out, nil
}

func decode(p *byte) (string, error) {
	if p == nil {
		return "", ErrNilPointer
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	b := unsafe.Slice(p, n)
	if !utf8.Valid(b) {
		return "", errors.Wrapf(ErrInvalidUTF8, "%q", b)
	}
	return string(b), nil
}
