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

import "os"

// File is a file-backed sink. Flush maps to fsync so that a multiplexer
// sync pushes the data to stable storage, not just to the page cache.
type File struct {
	f *os.File
}

// NewFile creates or truncates the file at path.
func NewFile(path string) (*File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &File{f: f}, nil
}

// AppendFile opens the file at path for appending, creating it if needed.
func AppendFile(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	return &File{f: f}, nil
}

func (s *File) Write(p []byte) (int, error) {
	return s.f.Write(p)
}

func (s *File) Flush() error {
	return s.f.Sync()
}

func (s *File) Close() error {
	return s.f.Close()
}

// Name returns the path the sink was opened with.
func (s *File) Name() string {
	return s.f.Name()
}
