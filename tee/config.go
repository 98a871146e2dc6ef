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
	// DefaultBufferSize is the per-writer buffer capacity in bytes.
	DefaultBufferSize = 8192

	// DefaultFlushThreshold is the buffered byte count at which a writer
	// flushes to the registered sinks on its own.
	DefaultFlushThreshold = 6144
)

// Config holds the multiplexer construction parameters. It is immutable
// once a Multiplexer has been built from it.
type Config struct {
	// Per-writer buffer capacity, in bytes.
	BufferSize int `flag:"buffer-size"`

	// Buffered byte count that triggers an automatic flush. Must be
	// positive and smaller than BufferSize; out-of-range values are
	// silently clamped to 75% of BufferSize.
	FlushThreshold int `flag:"flush-threshold"`
}

// DefaultConfig contains the defaults for a multiplexer configuration.
func DefaultConfig() *Config {
	return &Config{
		BufferSize:     DefaultBufferSize,
		FlushThreshold: DefaultFlushThreshold,
	}
}

// normalized returns a copy of the configuration with misconfigured
// values corrected. Correction is silent: a bad threshold is an annoyance,
// not an error.
func (c Config) normalized() Config {
	if c.BufferSize <= 0 {
		c.BufferSize = DefaultBufferSize
	}
	if c.FlushThreshold <= 0 || c.FlushThreshold >= c.BufferSize {
		c.FlushThreshold = c.BufferSize * 3 / 4
	}
	return c
}
