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

package cstrs

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cstr returns a pointer to a NUL-terminated copy of s.
func cstr(s string) *byte {
	b := append([]byte(s), 0)
	return &b[0]
}

func TestDecode(t *testing.T) {
	got, err := Decode([]*byte{cstr("a"), cstr(""), cstr("Hello, 世界")})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "", "Hello, 世界"}, got)
}

func TestDecodeCopies(t *testing.T) {
	b := []byte("abc\x00")
	got, err := Decode([]*byte{&b[0]})
	require.NoError(t, err)
	b[0] = 'x'
	assert.Equal(t, []string{"abc"}, got)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name      string
		ptrs      []*byte
		wantIndex int
		wantErr   error
	}{
		{
			name:      "nil-pointer",
			ptrs:      []*byte{cstr("a"), nil},
			wantIndex: 1,
			wantErr:   ErrNilPointer,
		},
		{
			name:      "invalid-utf8",
			ptrs:      []*byte{cstr("\xff\xfe")},
			wantIndex: 0,
			wantErr:   ErrInvalidUTF8,
		},
		{
			name:      "truncated-utf8",
			ptrs:      []*byte{cstr("ok"), cstr("ok"), cstr("\xe4\xb8")},
			wantIndex: 2,
			wantErr:   ErrInvalidUTF8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.ptrs)
			assert.Nil(t, got)
			require.Error(t, err)

			var derr *DecodeError
			require.True(t, errors.As(err, &derr), "error %v is not a *DecodeError", err)
			assert.Equal(t, tt.wantIndex, derr.Index)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecodeArray(t *testing.T) {
	ptrs := []*byte{cstr("x"), cstr("y")}

	got, err := DecodeArray(unsafe.Pointer(&ptrs[0]), len(ptrs))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, got)

	got, err = DecodeArray(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = DecodeArray(nil, 1)
	assert.ErrorIs(t, err, ErrNilPointer)

	_, err = DecodeArray(unsafe.Pointer(&ptrs[0]), -1)
	assert.ErrorIs(t, err, ErrLength)
	assert.EqualError(t, err, "cstrs: -1: invalid length")
}
