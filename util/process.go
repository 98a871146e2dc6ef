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

// Package util implements cross domain functions used all across the code.
package util

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/teemux/teemux/log"
)

// AwaitTermSignal waits for standard termination signals, then runs the
// given function. It is meant for embedders whose only shutdown trigger
// is a signal; a loop that must also react to other events, like the
// tee run command ending on EOF, selects over its own signal channel
// instead.
func AwaitTermSignal(closeFn func()) {

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	sig := <-signals
	log.L().Infof("Signal received: %v", sig)

	closeFn()
}
