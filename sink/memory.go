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
	"bytes"
	"sync"
)

// Memory is an in-memory sink that accumulates everything written to it.
// It is safe for concurrent use, so it can be registered on a multiplexer
// flushed from several goroutines at once.
type Memory struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.buf.Write(p)
}

func (m *Memory) Flush() error {
	return nil
}

// Bytes returns a copy of the accumulated content.
func (m *Memory) Bytes() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]byte, m.buf.Len())
	copy(out, m.buf.Bytes())
	return out
}

func (m *Memory) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.buf.String()
}

func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.buf.Len()
}

// Reset discards the accumulated content.
func (m *Memory) Reset() {
	m.mu.Lock()
	m.buf.Reset()
	m.mu.Unlock()
}
