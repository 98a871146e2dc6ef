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

import "github.com/prometheus/client_golang/prometheus"

const namespace = "teemux"
const subSystem = "tee"

var (
	WritesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "writes_total",
			Help:      "Number of write operations.",
		},
	)
	BytesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "bytes_total",
			Help:      "Number of bytes accepted by the multiplexer.",
		},
	)
	FlushesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "flushes_total",
			Help:      "Number of buffer flushes, explicit or threshold-triggered.",
		},
	)
	BypassesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "bypasses_total",
			Help:      "Number of writes large enough to skip buffering.",
		},
	)
	SinkErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "sink_errors_total",
			Help:      "Number of failed sink writes or flushes.",
		},
	)
	RegisteredSinks = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "registered_sinks",
			Help:      "Number of sinks currently registered.",
		},
	)

	metricsList = []prometheus.Collector{
		WritesTotal,
		BytesTotal,
		FlushesTotal,
		BypassesTotal,
		SinkErrorsTotal,
		RegisteredSinks,
	}
)

// Metrics returns the collectors exposed by this package, ready to be
// registered on a prometheus registry.
func Metrics() []prometheus.Collector {
	return metricsList
}
