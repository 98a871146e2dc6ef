/*
   Copyright 2025-2026 The teemux authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package tee

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferAppendAndTake(t *testing.T) {

	buf := newBuffer(16)

	require.True(t, buf.fits(10))
	buf.append([]byte("0123456789"))
	require.Equal(t, 10, buf.used())

	require.False(t, buf.fits(7))
	require.True(t, buf.fits(6))

	data := buf.take()
	require.Equal(t, []byte("0123456789"), data)
	require.Equal(t, 0, buf.used())

	// take on an empty buffer yields nothing
	require.Nil(t, buf.take())
}

func TestBufferTakeIsPrivateCopy(t *testing.T) {

	buf := newBuffer(16)
	buf.append([]byte("aaaa"))

	data := buf.take()
	buf.append([]byte("bbbb"))

	require.Equal(t, []byte("aaaa"), data, "snapshot must not alias the buffer storage")
}

func TestBufferResetKeepsStorage(t *testing.T) {

	buf := newBuffer(32)
	buf.append(bytes.Repeat([]byte{'x'}, 32))
	require.Equal(t, 32, buf.used())

	buf.reset()
	require.Equal(t, 0, buf.used())
	require.Equal(t, 32, buf.cap())
}

func TestBufferAdaptiveGrowth(t *testing.T) {

	buf := newBuffer(64)

	// sustained large writes double the capacity after a full window
	for i := 0; i < growthWindow; i++ {
		buf.observe(60)
	}
	require.Equal(t, 128, buf.cap())

	// small writes leave it alone
	for i := 0; i < growthWindow; i++ {
		buf.observe(4)
	}
	require.Equal(t, 128, buf.cap())
}

func TestBufferGrowthCeiling(t *testing.T) {

	buf := newBuffer(growthCeiling)

	for i := 0; i < growthWindow; i++ {
		buf.observe(growthCeiling - 1)
	}
	require.Equal(t, growthCeiling, buf.cap(), "capacity must never exceed the ceiling")
}
