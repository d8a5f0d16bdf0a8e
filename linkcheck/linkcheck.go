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

// Package linkcheck resolves dereferenceable references and classifies them
// as reachable or broken.
package linkcheck

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnsupportedScheme is returned for references that are not http(s) URLs.
	ErrUnsupportedScheme = errors.New("linkcheck: unsupported scheme")
	// ErrMalformed is returned for references that cannot be parsed as URLs.
	ErrMalformed = errors.New("linkcheck: malformed reference")
)

// Result is the outcome of resolving one reference.
type Result struct {
	IRI    string
	Status int
	Err    error
}

// Reachable reports whether the reference resolved with status 200.
// Any other status and every transport failure count as broken.
func (r Result) Reachable() bool {
	return r.Err == nil && r.Status == http.StatusOK
}

func (r Result) String() string {
	switch {
	case r.Err != nil:
		return fmt.Sprintf("%s: %v", r.IRI, r.Err)
	case r.Reachable():
		return fmt.Sprintf("%s: ok", r.IRI)
	}
	return fmt.Sprintf("%s: status %d", r.IRI, r.Status)
}

// Resolver resolves a single reference. Implementations must not panic and
// must report every failure through Result.Err.
type Resolver interface {
	Resolve(ctx context.Context, iri string) Result
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, iri string) Result

func (f ResolverFunc) Resolve(ctx context.Context, iri string) Result {
	return f(ctx, iri)
}
