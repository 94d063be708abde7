// Copyright (c) 2025, The resep Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/resepfinder/resep/pkg/errors"
)

// WriteMetrics writes every registered metric, the catalog request counters
// included, to path in the Prometheus text exposition format.
func WriteMetrics(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return errors.WrapWithContext(errors.ErrCodeInternal, "failed to write metrics", err,
			map[string]any{"path": path})
	}
	return nil
}

// statusError labels requests that never got a response.
const statusError = "error"

var (
	// Catalog request metrics
	catalogRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resep_catalog_requests_total",
			Help: "Total number of catalog requests by endpoint and HTTP status",
		},
		[]string{"endpoint", "status"}, // list, search, filter, lookup; status code or error
	)

	catalogRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "resep_catalog_request_duration_seconds",
			Help:    "Duration of catalog requests in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"endpoint"},
	)
)
