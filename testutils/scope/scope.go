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

package scope

import (
	"fmt"
	"testing"
)

type task struct {
	title string
	run   func(t *testing.T)
}

// Let registers a step inside a scenario.
type Let func(string, func(t *testing.T))

// Scenario groups steps that share a prepared state.
type Scenario func(string, func())

// TestF is the before/after hook signature.
type TestF func(t *testing.T)

func report(format string, v ...interface{}) {
	if testing.Verbose() {
		fmt.Printf(format, v...)
	}
}

// Scope returns scenario and let functions to semantically organize
// integration tests. The before and after hooks run around each scenario.
//
//	scenario, let := scope.Scope(t, before, after)
//	scenario("writers share the sinks", func() {
//		let("delivers to both", func(t *testing.T) { ... })
//	})
func Scope(t *testing.T, before, after TestF) (Scenario, Let) {
	var tasks []task

	let := func(title string, run func(t *testing.T)) {
		tasks = append(tasks, task{title, run})
	}

	scenario := func(title string, prepare func()) {
		before(t)
		ok := t.Run(title, func(t *testing.T) {
			report("%s\n", title)
			tasks = tasks[:0]
			prepare()
			for i, tx := range tasks {
				report("\t#%d %s\n", i, tx.title)
				tx.run(t)
			}
		})
		after(t)

		if !ok {
			report("%s → failed\n", title)
		}
	}
	return scenario, let
}
