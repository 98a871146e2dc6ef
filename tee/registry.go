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
	"fmt"
	"io"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/teemux/teemux/sink"
)

// registry is the shared, ordered list of currently attached sinks.
//
// Mutation takes the write lock and is bounded: no I/O happens inside
// add or remove. Fan-out takes the read lock for the duration of the sink
// writes, which lets flushes from different writers proceed in parallel.
// The read lock only keeps the list stable; two goroutines may well be
// inside the same sink's Write at the same time. Per-sink mutual
// exclusion, when needed, belongs to the sink itself (see sink.Serialize).
type registry struct {
	mu    sync.RWMutex
	sinks []io.Writer
}

func (r *registry) add(w io.Writer) {
	r.mu.Lock()
	r.sinks = append(r.sinks, w)
	r.mu.Unlock()
}

// remove deletes every entry identical to w, comparing interface
// identity, not content. Removing a sink that is not present is a no-op.
func (r *registry) remove(w io.Writer) {
	r.mu.Lock()
	kept := r.sinks[:0]
	for _, s := range r.sinks {
		if s != w {
			kept = append(kept, s)
		}
	}
	for i := len(kept); i < len(r.sinks); i++ {
		r.sinks[i] = nil
	}
	r.sinks = kept
	r.mu.Unlock()
}

func (r *registry) size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sinks)
}

// fanOut writes p to every registered sink in insertion order. A failing
// sink never aborts delivery to the remaining ones; failures are
// aggregated into the returned error. The returned count is the largest
// number of bytes any sink accepted, or len(p) when every sink took the
// whole payload (including the trivial empty-registry case).
func (r *registry) fanOut(p []byte) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.sinks) == 0 {
		return len(p), nil
	}

	var errs *multierror.Error
	max := 0
	for i, s := range r.sinks {
		n, err := s.Write(p)
		if err == nil && n < len(p) {
			err = io.ErrShortWrite
		}
		if err != nil {
			SinkErrorsTotal.Inc()
			errs = multierror.Append(errs, fmt.Errorf("sink %d: %v", i, err))
		}
		if n > max {
			max = n
		}
	}
	if errs != nil {
		return max, errs.ErrorOrNil()
	}
	return len(p), nil
}

// sync invokes the flush primitive of every sink that has one,
// aggregating failures.
func (r *registry) sync() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var errs *multierror.Error
	for i, s := range r.sinks {
		f, ok := s.(sink.Flusher)
		if !ok {
			continue
		}
		if err := f.Flush(); err != nil {
			SinkErrorsTotal.Inc()
			errs = multierror.Append(errs, fmt.Errorf("sink %d: %v", i, err))
		}
	}
	return errs.ErrorOrNil()
}
