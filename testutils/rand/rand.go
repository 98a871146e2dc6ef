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

// Package rand provides deterministic-free payload generation for tests
// and benchmarks.
package rand

import "math/rand"

// Bytes returns n random bytes, including NUL and other control values.
func Bytes(n int) []byte {
	out := make([]byte, n)
	rand.Read(out)
	return out
}

// Printable returns n random printable ASCII bytes.
func Printable(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(32 + rand.Intn(95))
	}
	return out
}
