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
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemux/teemux/log"
	"github.com/teemux/teemux/metrics"
	"github.com/teemux/teemux/sink"
	"github.com/teemux/teemux/tee"
)

var teeRun *cobra.Command = &cobra.Command{
	Use:   "run",
	Short: "Read records from standard input and fan them out to the configured sinks",
	RunE:  runTeeRun,
}

func init() {
	teeCmd.AddCommand(teeRun)
}

func runTeeRun(cmd *cobra.Command, args []string) error {

	conf := teeCtx.Value(k("tee.config")).(*teeConfig)

	if err := addrParse(conf.TCP...); err != nil {
		return err
	}
	if conf.MetricsAddr != "" {
		if err := addrParse(conf.MetricsAddr); err != nil {
			return err
		}
	}

	logger := log.L().Named("tee")

	mux := tee.New(&tee.Config{
		BufferSize:     conf.BufferSize,
		FlushThreshold: conf.FlushThreshold,
	}, logger)

	var closers []io.Closer
	register := func(w io.Writer) {
		if conf.Serialize {
			w = sink.Serialize(w)
		}
		mux.AddSink(w)
	}

	for _, path := range conf.Files {
		f, err := sink.NewFile(path)
		if err != nil {
			return fmt.Errorf("can't open file sink %s: %v", path, err)
		}
		closers = append(closers, f)
		register(f)
	}
	for _, path := range conf.AppendFiles {
		f, err := sink.AppendFile(path)
		if err != nil {
			return fmt.Errorf("can't open file sink %s: %v", path, err)
		}
		closers = append(closers, f)
		register(f)
	}
	for _, addr := range conf.TCP {
		c, err := sink.DialTCP(addr)
		if err != nil {
			return fmt.Errorf("can't dial TCP sink %s: %v", addr, err)
		}
		closers = append(closers, c)
		register(c)
	}
	if conf.Stdout {
		register(sink.NoopFlusher{Writer: os.Stdout})
	}

	if mux.NumSinks() == 0 {
		logger.Warnf("No sinks configured, records will be discarded")
	}

	var srv *metrics.Server
	if conf.MetricsAddr != "" {
		srv = metrics.NewServer(conf.MetricsAddr, logger.Named("metrics"), tee.Metrics()...)
		srv.Start()
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	// WriterFor registers the handle on the multiplexer, so the Close
	// below drains whatever the pump left buffered when a signal cuts
	// the copy short.
	done := make(chan error, 1)
	go func() {
		done <- pump(os.Stdin, mux.WriterFor(0), logger)
	}()

	select {
	case err := <-done:
		if err != nil {
			logger.Errorf("Input copy failed: %v", err)
		}
	case sig := <-signals:
		logger.Infof("Signal received: %v", sig)
	}

	if err := mux.Close(); err != nil {
		logger.Warnf("Flush on shutdown: %v", err)
	}
	if srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warnf("Metrics server shutdown: %v", err)
		}
	}
	for _, c := range closers {
		if err := c.Close(); err != nil {
			logger.Warnf("Closing sink: %v", err)
		}
	}

	logger.Debugf("Stopping tee, about to exit...")
	return nil
}

// pump copies the reader into the writer in fixed size chunks until EOF,
// then syncs so the tail still under the flush threshold reaches the
// sinks. Sink failures are logged and the copy keeps going; only a
// failure to read the source ends the loop early.
func pump(r io.Reader, w *tee.Writer, logger log.Logger) error {
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				logger.Warnf("Fan-out: %v", werr)
			}
		}
		if err == io.EOF {
			return w.Sync()
		}
		if err != nil {
			if ferr := w.Flush(); ferr != nil {
				logger.Warnf("Fan-out: %v", ferr)
			}
			return err
		}
	}
}
