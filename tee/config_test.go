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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigNormalized(t *testing.T) {

	testCases := []struct {
		conf     Config
		expected Config
	}{
		// valid config passes through untouched
		{Config{BufferSize: 8192, FlushThreshold: 6144}, Config{BufferSize: 8192, FlushThreshold: 6144}},
		// threshold at or above capacity clamps to 75%
		{Config{BufferSize: 100, FlushThreshold: 100}, Config{BufferSize: 100, FlushThreshold: 75}},
		{Config{BufferSize: 100, FlushThreshold: 200}, Config{BufferSize: 100, FlushThreshold: 75}},
		// non-positive threshold clamps to 75%
		{Config{BufferSize: 100, FlushThreshold: 0}, Config{BufferSize: 100, FlushThreshold: 75}},
		{Config{BufferSize: 100, FlushThreshold: -1}, Config{BufferSize: 100, FlushThreshold: 75}},
		// non-positive capacity falls back to the default
		{Config{BufferSize: 0, FlushThreshold: 6144}, Config{BufferSize: DefaultBufferSize, FlushThreshold: 6144}},
		{Config{}, Config{BufferSize: DefaultBufferSize, FlushThreshold: DefaultBufferSize * 3 / 4}},
	}

	for i, c := range testCases {
		require.Equalf(t, c.expected, c.conf.normalized(), "unexpected correction in test case %d", i)
	}
}

func TestNewCorrectsMisconfiguration(t *testing.T) {

	mux := New(&Config{BufferSize: 16, FlushThreshold: 32}, nil)

	conf := mux.Config()
	require.Equal(t, 16, conf.BufferSize)
	require.Equal(t, 12, conf.FlushThreshold)
}
