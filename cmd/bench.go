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
	"os"
	"time"

	"github.com/spf13/cobra"
	v "github.com/spf13/viper"
	chart "github.com/wcharczuk/go-chart"
	"golang.org/x/sync/errgroup"

	"github.com/teemux/teemux/log"
	"github.com/teemux/teemux/sink"
	"github.com/teemux/teemux/tee"
)

type benchConfig struct {
	sinks   []int
	workers int
	records int
	size    int
	chart   string
}

var benchConf benchConfig

var benchCmd *cobra.Command = &cobra.Command{
	Use:   "bench",
	Short: "Measure fan-out throughput against discard sinks",
	Long: `Bench drives concurrent writers through the multiplexer against
in-process discard sinks and reports throughput per sink count. It is a
way to size buffers and thresholds for a target record mix.`,
	RunE: runBench,
}

func init() {
	f := benchCmd.Flags()
	f.IntSliceVar(&benchConf.sinks, "sinks", []int{1, 2, 4, 8}, "Comma-delimited sink counts to sweep")
	f.IntVar(&benchConf.workers, "workers", 4, "Concurrent writers")
	f.IntVar(&benchConf.records, "records", 100000, "Records per writer")
	f.IntVar(&benchConf.size, "size", 512, "Record size in bytes")
	f.StringVar(&benchConf.chart, "chart", "", "Write a PNG throughput chart to this path")

	// Lookups
	v.BindPFlag("bench.sinks", f.Lookup("sinks"))
	v.BindPFlag("bench.workers", f.Lookup("workers"))
	v.BindPFlag("bench.records", f.Lookup("records"))
	v.BindPFlag("bench.size", f.Lookup("size"))
	v.BindPFlag("bench.chart", f.Lookup("chart"))

	Root.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {

	conf := benchConfig{
		sinks:   v.GetIntSlice("bench.sinks"),
		workers: v.GetInt("bench.workers"),
		records: v.GetInt("bench.records"),
		size:    v.GetInt("bench.size"),
		chart:   v.GetString("bench.chart"),
	}
	if conf.workers < 1 || conf.records < 1 || conf.size < 1 {
		return fmt.Errorf("workers, records and size must be positive")
	}

	logger := log.L().Named("bench")
	logger.Infof("Running %d writers x %d records of %d bytes", conf.workers, conf.records, conf.size)

	record := make([]byte, conf.size)
	for i := range record {
		record[i] = byte('a' + i%26)
	}

	xs := make([]float64, 0, len(conf.sinks))
	ys := make([]float64, 0, len(conf.sinks))

	fmt.Printf("%8s %12s %12s\n", "sinks", "elapsed", "MB/s")
	for _, n := range conf.sinks {
		elapsed, err := benchRun(n, conf, record)
		if err != nil {
			return err
		}
		written := float64(conf.workers) * float64(conf.records) * float64(conf.size)
		mbs := written / (1 << 20) / elapsed.Seconds()
		fmt.Printf("%8d %12v %12.1f\n", n, elapsed.Round(time.Millisecond), mbs)

		xs = append(xs, float64(n))
		ys = append(ys, mbs)
	}

	if conf.chart != "" {
		return renderChart(conf.chart, xs, ys)
	}
	return nil
}

// benchRun fans conf.workers concurrent writers out to n discard sinks
// and returns the wall clock time the whole run took.
func benchRun(n int, conf benchConfig, record []byte) (time.Duration, error) {

	mux := tee.New(tee.DefaultConfig(), log.L().Named("bench"))
	for i := 0; i < n; i++ {
		mux.AddSink(sink.NewNull())
	}

	start := time.Now()
	var g errgroup.Group
	for i := 0; i < conf.workers; i++ {
		g.Go(func() error {
			w := mux.NewWriter()
			for j := 0; j < conf.records; j++ {
				if _, err := w.Write(record); err != nil {
					return err
				}
			}
			return w.Flush()
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	if err := mux.Close(); err != nil {
		return 0, err
	}
	return time.Since(start), nil
}

func renderChart(path string, xs, ys []float64) error {

	graph := chart.Chart{
		XAxis: chart.XAxis{Name: "sinks"},
		YAxis: chart.YAxis{Name: "MB/s"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "throughput",
				XValues: xs,
				YValues: ys,
			},
		},
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("can't create chart file %s: %v", path, err)
	}
	defer f.Close()

	return graph.Render(chart.PNG, f)
}
