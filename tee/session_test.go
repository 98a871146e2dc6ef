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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teemux/teemux/sink"
	"github.com/teemux/teemux/testutils/scope"
)

func TestMixedSinkSession(t *testing.T) {

	var dir string

	before := func(t *testing.T) {
		var err error
		dir, err = os.MkdirTemp("", "teemux-session")
		require.NoError(t, err)
	}
	after := func(t *testing.T) {
		require.NoError(t, os.RemoveAll(dir))
	}

	scenario, let := scope.Scope(t, before, after)

	scenario("a session teeing to a file and a memory sink", func() {

		mux := New(nil, nil)
		mem := sink.NewMemory()

		var file *sink.File
		var path string

		let("registers both sinks", func(t *testing.T) {
			var err error
			path = filepath.Join(dir, "session.log")
			file, err = sink.NewFile(path)
			require.NoError(t, err)

			mux.AddSink(mem)
			mux.AddSink(file)
			require.Equal(t, 2, mux.NumSinks())
		})

		let("delivers identical content to both", func(t *testing.T) {
			w := mux.NewWriter()
			w.WriteString("Writing to files\n")
			require.NoError(t, w.Sync())

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			require.Equal(t, "Writing to files\n", string(content))
			require.Equal(t, "Writing to files\n", mem.String())
		})

		let("stops delivering to a removed sink", func(t *testing.T) {
			mux.RemoveSink(file)
			require.NoError(t, file.Close())

			w := mux.NewWriter()
			w.WriteString("memory only\n")
			require.NoError(t, w.Sync())

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			require.Equal(t, "Writing to files\n", string(content))
			require.Equal(t, "Writing to files\nmemory only\n", mem.String())
		})
	})
}
