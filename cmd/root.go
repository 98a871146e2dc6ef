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

// Package cmd implements the teemux command line tool.
package cmd

import (
	"context"
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	v "github.com/spf13/viper"

	"github.com/teemux/teemux/log"
)

// Context key type to be used when adding values to context
// as per documentation:
//	https://golang.org/pkg/context/#example_WithValue
type k string

var logLevel string

var Root *cobra.Command = &cobra.Command{
	Use:   "teemux",
	Short: "Teemux output multiplexer",
	Long: `Teemux fans a single stream of records out to any number of sinks
(files, TCP endpoints, standard output) through per-writer buffers that
flush on a configurable threshold.`,
	// SilenceUsage is set to true -> https://github.com/spf13/cobra/issues/340
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := v.GetString("log")
		log.SetDefault(log.New(&log.LoggerOptions{
			Name:            "teemux",
			IncludeLocation: true,
			Level:           log.LevelFromString(level),
			Output:          log.DefaultOutput,
			TimeFormat:      log.DefaultTimeFormat,
		}))
	},
}

var Ctx context.Context = context.Background()

func init() {
	f := Root.PersistentFlags()
	f.StringVar(&logLevel, "log", "info", "Log level: trace, debug, info, warn, error, off")
	v.BindPFlag("log", f.Lookup("log"))

	readConfigFile()
}

// readConfigFile loads optional settings from $HOME/.teemux.yml or a
// teemux.yml in the working directory. A missing file is not an error.
func readConfigFile() {
	home, err := homedir.Dir()
	if err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")
	v.SetConfigName(".teemux")
	v.SetEnvPrefix("teemux")
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Can't read config file: %v\n", err)
		}
	}
}
