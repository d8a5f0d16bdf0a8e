// Copyright 2024 The Cayley Authors. All rights reserved.
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

package linkcheck

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalogqa_link_requests_total",
		Help: "Number of HTTP requests issued to resolve references, by outcome.",
	}, []string{"outcome"})
	mRequestSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "catalogqa_link_request_seconds",
		Help:    "Time to resolve a single reference, retries included.",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
	})
	mRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalogqa_link_retries_total",
		Help: "Number of retried HTTP requests.",
	})

	mCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalogqa_link_cache_hits",
		Help: "Number of references answered from the result cache.",
	})
	mCacheMiss = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalogqa_link_cache_miss",
		Help: "Number of references that had to be resolved.",
	})
)

const (
	outcomeOK     = "ok"
	outcomeStatus = "status"
	outcomeError  = "error"
)
