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

const (
	// growthWindow is the number of writes sampled before the adaptive
	// growth policy reconsiders the buffer capacity.
	growthWindow = 64

	// growthCeiling is the hard limit the capacity can grow up to.
	growthCeiling = 1 << 20
)

// buffer is the accumulator owned by a single Writer. It is deliberately
// lock-free: single-writer ownership makes synchronization unnecessary.
type buffer struct {
	data     []byte
	capacity int

	// adaptive growth statistics
	samples int
	total   int64
}

func newBuffer(capacity int) *buffer {
	return &buffer{
		data:     make([]byte, 0, capacity),
		capacity: capacity,
	}
}

func (b *buffer) used() int {
	return len(b.data)
}

func (b *buffer) cap() int {
	return b.capacity
}

// fits reports whether n more bytes can be appended without overflowing
// the capacity.
func (b *buffer) fits(n int) bool {
	return len(b.data)+n <= b.capacity
}

// append copies p into the tail of the buffer. The caller must have
// checked fits first.
func (b *buffer) append(p []byte) {
	b.data = append(b.data, p...)
}

// take returns a private copy of the pending bytes and resets the buffer.
// The copy is what gets handed to the sinks, so a subsequent append on
// this buffer never races with an in-flight fan-out.
func (b *buffer) take() []byte {
	if len(b.data) == 0 {
		return nil
	}
	out := make([]byte, len(b.data))
	copy(out, b.data)
	b.reset()
	return out
}

// reset drops the pending bytes but keeps the storage, amortizing the
// allocation across flush cycles.
func (b *buffer) reset() {
	b.data = b.data[:0]
}

// observe feeds the adaptive growth policy with the size of a buffered
// write. When the average write size over the sampling window exceeds
// half the capacity, the capacity doubles, up to growthCeiling. This is a
// tuning hook only: it never changes what gets delivered, just how often
// flushes happen.
func (b *buffer) observe(n int) {
	b.samples++
	b.total += int64(n)
	if b.samples < growthWindow {
		return
	}
	avg := b.total / int64(b.samples)
	b.samples = 0
	b.total = 0
	if avg > int64(b.capacity/2) && b.capacity < growthCeiling {
		b.capacity *= 2
		grown := make([]byte, len(b.data), b.capacity)
		copy(grown, b.data)
		b.data = grown
	}
}
