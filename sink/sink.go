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

// Package sink provides ready-made destinations for the tee multiplexer:
// files, TCP connections, in-memory buffers and the discard sink. Any
// io.Writer can be registered as a sink; the types here only add flushing,
// connection state or thread safety on top of it.
package sink

import "io"

// Flusher is implemented by sinks that can push buffered or kernel-side
// data towards its final destination. The multiplexer discovers it by type
// assertion during a sync.
type Flusher interface {
	Flush() error
}

// WriteFlusher groups the basic write and flush capabilities a sink
// may expose.
type WriteFlusher interface {
	io.Writer
	Flusher
}

// NoopFlusher wraps a plain writer so that it satisfies WriteFlusher with
// a flush that always succeeds.
type NoopFlusher struct {
	io.Writer
}

func (NoopFlusher) Flush() error {
	return nil
}
