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

package sink

import (
	"io"
	"sync"
)

// Serialized wraps a sink with a mutex so that concurrent flushes from
// different writers cannot interleave inside it. The multiplexer itself
// only guarantees that the sink list is stable during a fan-out, not that
// a single sink sees one write at a time; wrap non-thread-safe sinks with
// Serialized when several writers share the multiplexer.
type Serialized struct {
	mu sync.Mutex
	w  io.Writer
}

func Serialize(w io.Writer) *Serialized {
	return &Serialized{w: w}
}

func (s *Serialized) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func (s *Serialized) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.w.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// Unwrap returns the wrapped writer.
func (s *Serialized) Unwrap() io.Writer {
	return s.w
}
