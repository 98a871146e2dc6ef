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

package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddrParse(t *testing.T) {

	testCases := []struct {
		endpoint string
		valid    bool
	}{
		{"127.0.0.1:9000", true},
		{"localhost:9000", true},
		{"collector.internal:514", true},
		{"tcp://127.0.0.1:9000", false},
		{"http://localhost:9000", false},
		{"127.0.0.1", false},
		{":9000", false},
	}

	for _, c := range testCases {
		err := addrParse(c.endpoint)
		if c.valid {
			require.NoError(t, err, "endpoint %s should be accepted", c.endpoint)
		} else {
			require.Error(t, err, "endpoint %s should be rejected", c.endpoint)
		}
	}
}

func TestAddrParseMultiple(t *testing.T) {
	require.NoError(t, addrParse("127.0.0.1:9000", "localhost:9001"))
	require.Error(t, addrParse("127.0.0.1:9000", "nowhere"))
	require.NoError(t, addrParse())
}
