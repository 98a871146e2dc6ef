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

// Package metrics exposes the teemux prometheus collectors over HTTP.
package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/teemux/teemux/log"
)

// NewMetricsHTTP will return a mux server with the endpoint required to
// scrape metrics, which are retrieved using Prometheus.
func NewMetricsHTTP(r *prometheus.Registry) *http.ServeMux {
	mux := http.NewServeMux()
	g := prometheus.Gatherers{
		prometheus.DefaultGatherer,
		r,
	}

	handler := promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	instrumentedHandler := promhttp.InstrumentMetricHandler(r, handler)
	mux.Handle("/metrics", instrumentedHandler)
	return mux
}

// Server serves the collectors registered on its registry until Shutdown.
type Server struct {
	server   *http.Server
	registry *prometheus.Registry

	log log.Logger
}

// NewServer builds a metrics server bound to addr with the given
// collectors already registered.
func NewServer(addr string, logger log.Logger, collectors ...prometheus.Collector) *Server {
	if logger == nil {
		logger = log.L()
	}
	r := prometheus.NewRegistry()
	for _, c := range collectors {
		r.MustRegister(c)
	}
	return &Server{
		server: &http.Server{
			Addr:    addr,
			Handler: NewMetricsHTTP(r),
		},
		registry: r,
		log:      logger,
	}
}

// Start serves the metrics endpoint in a background goroutine.
func (s *Server) Start() {
	go func() {
		s.log.Infof("metrics: listening on %s", s.server.Addr)
		if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
			s.log.Errorf("metrics: server stopped: %v", err)
		}
	}()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
