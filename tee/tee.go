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

// Package tee implements a buffered fan-out multiplexer: a single logical
// write target that duplicates every byte sequence written to it across a
// dynamically changing set of sinks.
//
// Each concurrent producer owns a Writer with a private buffer, so the
// hot path involves no locking at all. Buffered bytes reach the sinks when
// the buffer crosses the flush threshold, on an explicit Flush, or
// directly when a single write is larger than the buffer could ever hold.
// The sink list is shared and guarded by a reader/writer lock: flushes
// from different writers run in parallel under the read lock, while
// adding and removing sinks takes the write lock.
//
// Writes issued through one Writer reach every sink in order. There is no
// total order across writers, and no per-sink mutual exclusion during
// concurrent flushes: a sink that is not internally thread-safe must be
// wrapped with sink.Serialize or fed from a single writer.
package tee

import (
	"io"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/teemux/teemux/log"
)

// Multiplexer orchestrates buffering, threshold flushing and fan-out
// writes against the shared sink registry. All methods are safe for
// concurrent use.
type Multiplexer struct {
	conf Config
	reg  registry

	// writers handed out by WriterFor, keyed by caller-supplied id.
	writers sync.Map

	log log.Logger
}

// New returns a multiplexer with no sinks attached. A nil config means
// defaults; a nil logger means the package default logger.
func New(conf *Config, logger log.Logger) *Multiplexer {
	if conf == nil {
		conf = DefaultConfig()
	}
	if logger == nil {
		logger = log.L()
	}
	c := conf.normalized()
	if c != *conf {
		logger.Debugf("tee: corrected configuration %+v to %+v", *conf, c)
	}
	return &Multiplexer{
		conf: c,
		log:  logger,
	}
}

// NewWithSinks returns a multiplexer with the given sinks already
// attached, in order.
func NewWithSinks(conf *Config, logger log.Logger, sinks ...io.Writer) *Multiplexer {
	m := New(conf, logger)
	for _, s := range sinks {
		m.AddSink(s)
	}
	return m
}

// Config returns the effective, corrected configuration.
func (m *Multiplexer) Config() Config {
	return m.conf
}

// AddSink attaches a sink. The same sink may be registered more than
// once; it will then receive every write once per registration.
func (m *Multiplexer) AddSink(w io.Writer) {
	m.reg.add(w)
	RegisteredSinks.Set(float64(m.reg.size()))
	m.log.Tracef("tee: sink added, %d registered", m.reg.size())
}

// RemoveSink detaches every registration of the given sink, comparing by
// identity. Removing a sink that was never added is a no-op. Data already
// delivered to the sink is unaffected.
func (m *Multiplexer) RemoveSink(w io.Writer) {
	m.reg.remove(w)
	RegisteredSinks.Set(float64(m.reg.size()))
	m.log.Tracef("tee: sink removed, %d registered", m.reg.size())
}

// NumSinks returns the number of currently registered sinks, counting
// duplicates.
func (m *Multiplexer) NumSinks() int {
	return m.reg.size()
}

// Write fans p out to every registered sink without buffering. Writers
// use it for their bypass path; it is also the way to push unbuffered
// data through the multiplexer directly. Writing with zero sinks attached
// succeeds trivially.
func (m *Multiplexer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	WritesTotal.Inc()
	BytesTotal.Add(float64(len(p)))
	return m.reg.fanOut(p)
}

// Sync invokes the flush primitive of every sink that has one. It does
// not touch writer buffers; each Writer flushes its own.
func (m *Multiplexer) Sync() error {
	return m.reg.sync()
}

// NewWriter returns a buffered handle on the multiplexer. A Writer is not
// safe for concurrent use: give one to each producing goroutine.
func (m *Multiplexer) NewWriter() *Writer {
	return &Writer{
		mux: m,
		buf: newBuffer(m.conf.BufferSize),
	}
}

// WriterFor returns the writer registered under the given id, creating it
// on first use. It is the portable stand-in for thread-local buffers: a
// pool of workers can each claim a stable id and get their own buffer,
// while the multiplexer keeps track of them so Close can drain the lot.
func (m *Multiplexer) WriterFor(id uint64) *Writer {
	if w, ok := m.writers.Load(id); ok {
		return w.(*Writer)
	}
	w, _ := m.writers.LoadOrStore(id, m.NewWriter())
	return w.(*Writer)
}

// Close flushes every writer handed out by WriterFor and syncs the sinks.
// Callers must have stopped writing before calling Close: draining a
// buffer still in use by its goroutine is a race.
func (m *Multiplexer) Close() error {
	var errs *multierror.Error
	m.writers.Range(func(_, v interface{}) bool {
		if err := v.(*Writer).Flush(); err != nil {
			errs = multierror.Append(errs, err)
		}
		return true
	})
	if err := m.reg.sync(); err != nil {
		errs = multierror.Append(errs, err)
	}
	return errs.ErrorOrNil()
}
