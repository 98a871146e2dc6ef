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

	"github.com/hashicorp/go-multierror"
)

// Writer is a buffered handle on a Multiplexer. It owns its buffer
// exclusively, so none of its methods take a lock until the moment
// buffered bytes are handed to the sink registry.
//
// A Writer must not be shared between goroutines. Writes issued through
// it are delivered to every sink in the order they were written.
type Writer struct {
	mux *Multiplexer
	buf *buffer
}

// Write copies p into the writer's buffer, flushing to the sinks when the
// buffer cannot take p or when the flush threshold is reached afterwards.
// Writes at least as large as the buffer capacity skip buffering and go
// straight to the sinks, after any pending bytes, so order is preserved.
//
// The returned count reflects the bytes accepted by the multiplexer,
// which is len(p) on every buffered path; sink failures surface in the
// returned error without stopping delivery to the healthy sinks.
func (w *Writer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	WritesTotal.Inc()
	BytesTotal.Add(float64(len(p)))

	// Bypass: p could never fit, don't even try.
	if len(p) >= w.buf.cap() {
		BypassesTotal.Inc()
		var errs *multierror.Error
		if err := w.Flush(); err != nil {
			errs = multierror.Append(errs, err)
		}
		n, err := w.mux.reg.fanOut(p)
		if err != nil {
			errs = multierror.Append(errs, err)
		}
		return n, errs.ErrorOrNil()
	}

	var errs *multierror.Error
	if !w.buf.fits(len(p)) {
		if err := w.Flush(); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	w.buf.append(p)
	w.buf.observe(len(p))

	if w.buf.used() >= w.mux.conf.FlushThreshold {
		if err := w.Flush(); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return len(p), errs.ErrorOrNil()
}

// WriteString writes s like Write does p.
func (w *Writer) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// Printf formats into a scratch string and performs a single Write with
// the result, so a formatted record is never split across flushes.
func (w *Writer) Printf(format string, args ...interface{}) (int, error) {
	return w.WriteString(fmt.Sprintf(format, args...))
}

// Flush delivers the pending buffered bytes to every currently registered
// sink. The pending bytes are snapshotted and the buffer reset before the
// registry lock is taken: the buffer is clean again as soon as possible,
// and membership changes are observed at flush time, not at write time.
func (w *Writer) Flush() error {
	data := w.buf.take()
	if data == nil {
		return nil
	}
	FlushesTotal.Inc()
	_, err := w.mux.reg.fanOut(data)
	return err
}

// Sync flushes the buffer and then invokes each sink's own flush
// primitive. The aggregate fails if any sink's flush fails.
func (w *Writer) Sync() error {
	var errs *multierror.Error
	if err := w.Flush(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := w.mux.reg.sync(); err != nil {
		errs = multierror.Append(errs, err)
	}
	return errs.ErrorOrNil()
}

// AddSink attaches a sink on the underlying multiplexer.
func (w *Writer) AddSink(s io.Writer) {
	w.mux.AddSink(s)
}

// RemoveSink detaches every registration of the given sink on the
// underlying multiplexer.
func (w *Writer) RemoveSink(s io.Writer) {
	w.mux.RemoveSink(s)
}

// Buffered returns the number of pending bytes.
func (w *Writer) Buffered() int {
	return w.buf.used()
}

// Capacity returns the current buffer capacity, which may have grown
// beyond the configured size under the adaptive policy.
func (w *Writer) Capacity() int {
	return w.buf.cap()
}
