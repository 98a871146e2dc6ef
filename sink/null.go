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

import "sync/atomic"

// Null discards everything written to it while counting the bytes it
// accepted. Used by the bench command to measure the multiplexer without
// paying for real I/O.
type Null struct {
	bytes uint64
}

func NewNull() *Null {
	return &Null{}
}

func (n *Null) Write(p []byte) (int, error) {
	atomic.AddUint64(&n.bytes, uint64(len(p)))
	return len(p), nil
}

func (n *Null) Flush() error {
	return nil
}

// BytesWritten returns the total number of bytes accepted so far.
func (n *Null) BytesWritten() uint64 {
	return atomic.LoadUint64(&n.bytes)
}
