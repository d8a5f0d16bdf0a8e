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
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/cayleygraph/catalogqa/internal/lru"
)

// DefaultWorkers is the number of concurrent resolutions of a Check call.
const DefaultWorkers = 8

// Checker resolves batches of references on a bounded worker pool.
type Checker struct {
	Resolver Resolver
	// Workers bounds concurrent resolutions; DefaultWorkers if not positive.
	Workers int
	// CacheSize bounds the per-call result cache; unbounded if not positive.
	// With a bounded cache an evicted reference may be resolved again.
	CacheSize int
}

// Check resolves every reference and returns one result per input, in input
// order. Repeated references are resolved once.
func (c *Checker) Check(ctx context.Context, iris []string) []Result {
	workers := c.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	var (
		cache  = lru.New[Result](c.CacheSize)
		flight singleflight.Group
		out    = make([]Result, len(iris))
	)
	resolve := func(iri string) Result {
		if r, ok := cache.Get(iri); ok {
			mCacheHits.Inc()
			return r
		}
		v, _, _ := flight.Do(iri, func() (interface{}, error) {
			if r, ok := cache.Get(iri); ok {
				mCacheHits.Inc()
				return r, nil
			}
			mCacheMiss.Inc()
			r := c.Resolver.Resolve(ctx, iri)
			r.IRI = iri
			cache.Put(iri, r)
			return r, nil
		})
		return v.(Result)
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, iri := range iris {
		i, iri := i, iri
		g.Go(func() error {
			out[i] = resolve(iri)
			return nil
		})
	}
	_ = g.Wait()
	return out
}
