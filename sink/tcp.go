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
	"net"
	"sync"
)

// TCP is a sink backed by a TCP connection. Once a write fails the sink
// stays broken and keeps reporting the failure; there is no reconnection
// or retry here. The caller inspects Connected/Err and decides whether to
// remove the sink from the multiplexer.
type TCP struct {
	conn net.Conn

	mu  sync.Mutex
	err error
}

// DialTCP connects to addr (host:port) and returns a sink over the
// resulting connection.
func DialTCP(addr string) (*TCP, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &TCP{conn: conn}, nil
}

// NewTCP wraps an already established connection.
func NewTCP(conn net.Conn) *TCP {
	return &TCP{conn: conn}
}

func (s *TCP) Write(p []byte) (int, error) {
	s.mu.Lock()
	if s.err != nil {
		err := s.err
		s.mu.Unlock()
		return 0, err
	}
	s.mu.Unlock()

	n, err := s.conn.Write(p)
	if err != nil {
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
	}
	return n, err
}

// Flush is a no-op: the kernel owns the socket buffers.
func (s *TCP) Flush() error {
	return s.Err()
}

// Connected reports whether the connection is still usable.
func (s *TCP) Connected() bool {
	return s.Err() == nil
}

// Err returns the first write error observed, if any.
func (s *TCP) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *TCP) Close() error {
	return s.conn.Close()
}

// RemoteAddr returns the remote address of the underlying connection.
func (s *TCP) RemoteAddr() net.Addr {
	return s.conn.RemoteAddr()
}
