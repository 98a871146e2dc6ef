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
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/teemux/teemux/sink"
)

type failingSink struct {
	writes int
}

func (f *failingSink) Write(p []byte) (int, error) {
	f.writes++
	return 0, errors.New("wire cut")
}

func (f *failingSink) Flush() error {
	return errors.New("wire still cut")
}

func TestRegistryRemoveAllMatches(t *testing.T) {

	var reg registry
	a := sink.NewMemory()
	b := sink.NewMemory()

	reg.add(a)
	reg.add(b)
	reg.add(a)
	require.Equal(t, 3, reg.size())

	reg.remove(a)
	require.Equal(t, 1, reg.size(), "remove must delete every registration of the sink")

	// removing a sink that is not present is a no-op
	reg.remove(a)
	require.Equal(t, 1, reg.size())
}

func TestRegistryIdentityNotValue(t *testing.T) {

	var reg registry
	a := sink.NewMemory()
	b := sink.NewMemory()

	reg.add(a)
	reg.remove(b)

	require.Equal(t, 1, reg.size(), "distinct sinks with equal content are distinct identities")
}

func TestRegistryFanOutEmpty(t *testing.T) {

	var reg registry

	n, err := reg.fanOut([]byte("nobody listens"))
	require.NoError(t, err)
	require.Equal(t, 14, n)
}

func TestRegistryFanOutSurvivesFailure(t *testing.T) {

	var reg registry
	bad := &failingSink{}
	good := sink.NewMemory()

	reg.add(bad)
	reg.add(good)

	payload := []byte("still delivered")
	n, err := reg.fanOut(payload)
	require.Error(t, err, "the aggregate must report the failing sink")
	require.Equal(t, len(payload), n, "the healthy sink accepted the whole payload")
	require.Equal(t, "still delivered", good.String())
	require.Equal(t, 1, bad.writes, "the failing sink was attempted exactly once")
}

func TestRegistrySyncAggregatesFailures(t *testing.T) {

	var reg registry
	bad := &failingSink{}
	good := sink.NewMemory()

	reg.add(good)
	reg.add(bad)

	require.Error(t, reg.sync())

	reg.remove(bad)
	require.NoError(t, reg.sync())
}
