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
	"fmt"
	"net/url"
	"strings"
)

const (
	errMalformedAddr    = "malformed address"
	errMissingAddrHost  = "missing address Host"
	errMissingAddrPort  = "missing address Port"
	errUnexpectedScheme = "unexpected URL Scheme"
)

// addrParse checks that given string parameters are valid endpoints for
// dialing or binding services: hostname + port. No schema is allowed.
func addrParse(endpoints ...string) error {
	for _, endpoint := range endpoints {

		if strings.Contains(endpoint, "://") {
			return fmt.Errorf("%s in %s", errUnexpectedScheme, endpoint)
		}

		// Add fake scheme to get an expected result from url.Parse
		url, err := url.Parse("http://" + endpoint)

		if err != nil {
			return fmt.Errorf("%s in %s", errMalformedAddr, endpoint)
		}

		if url.Hostname() == "" {
			return fmt.Errorf("%s in %s", errMissingAddrHost, endpoint)
		}

		if url.Port() == "" {
			return fmt.Errorf("%s in %s", errMissingAddrPort, endpoint)
		}
	}
	return nil
}
