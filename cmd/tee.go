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
	"context"
	"fmt"

	"github.com/octago/sflags/gen/gpflag"
	"github.com/spf13/cobra"

	"github.com/teemux/teemux/tee"
)

// teeConfig collects everything the tee subcommands need: the multiplexer
// parameters plus the set of sinks to fan out to.
type teeConfig struct {
	// Per-writer buffer capacity, in bytes.
	BufferSize int `flag:"buffer-size" desc:"Per-writer buffer capacity in bytes"`

	// Buffered byte count that triggers an automatic flush.
	FlushThreshold int `flag:"flush-threshold" desc:"Buffered byte count that triggers a flush"`

	// Paths of files to create and fan out to.
	Files []string `flag:"file" desc:"File to write records to (repeatable)"`

	// Paths of files to append to instead of truncating.
	AppendFiles []string `flag:"append-file" desc:"File to append records to (repeatable)"`

	// TCP endpoints (host:port) to dial and fan out to.
	TCP []string `flag:"tcp" desc:"TCP endpoint (host:port) to stream records to (repeatable)"`

	// Mirror every record on standard output.
	Stdout bool `flag:"stdout" desc:"Also write records to standard output"`

	// Serialize individual sink writes so concurrent flushes cannot
	// interleave inside a single sink.
	Serialize bool `flag:"serialize" desc:"Serialize writes within each sink"`

	// Bind address for the Prometheus metrics endpoint. Empty disables it.
	MetricsAddr string `flag:"metrics-addr" desc:"Bind address for /metrics (empty disables)"`
}

func defaultTeeConfig() *teeConfig {
	return &teeConfig{
		BufferSize:     tee.DefaultBufferSize,
		FlushThreshold: tee.DefaultFlushThreshold,
	}
}

var teeCmd *cobra.Command = &cobra.Command{
	Use:   "tee",
	Short: "Provides access to the teemux fan-out commands",
	Long: `The tee subcommands read a stream of records and replicate it to every
configured sink through a threshold-flushed buffer.`,
	TraverseChildren: true,
}

var teeCtx context.Context = configTee()

func init() {
	Root.AddCommand(teeCmd)
}

func configTee() context.Context {

	conf := defaultTeeConfig()

	err := gpflag.ParseTo(conf, teeCmd.PersistentFlags())
	if err != nil {
		panic(fmt.Sprintf("Unable to parse tee config: %v", err))
	}
	return context.WithValue(Ctx, k("tee.config"), conf)
}
