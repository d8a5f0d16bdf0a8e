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

package quality

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mEvalSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "catalogqa_evaluation_seconds",
		Help: "Time to evaluate one quality dimension.",
	}, []string{"dimension"})
	mLinksChecked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalogqa_links_checked_total",
		Help: "Number of references classified by the link validator.",
	})
	mLinksBroken = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalogqa_links_broken_total",
		Help: "Number of references classified as broken.",
	})
	mBloomNegative = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalogqa_compare_bloom_hits",
		Help: "Number of times the comparison bloom filter returned a negative result.",
	})
	mBloomPositive = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalogqa_compare_bloom_miss",
		Help: "Number of times the comparison bloom filter returned a positive result.",
	})
)

func observe(d Dimension, start time.Time) {
	mEvalSeconds.WithLabelValues(string(d)).Observe(time.Since(start).Seconds())
}
