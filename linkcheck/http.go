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
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/net/idna"

	"github.com/cayleygraph/catalogqa/clog"
)

const (
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "catalogqa-linkcheck/1.0"
)

// Options configures an HTTPResolver.
type Options struct {
	// Timeout bounds a single request attempt.
	Timeout time.Duration
	// Retries is the number of additional attempts after a transport error.
	// Non-200 responses are never retried.
	Retries   int
	UserAgent string
	// Client defaults to a client with its own transport.
	Client *http.Client
	// Backoff creates the retry policy; exponential backoff by default.
	Backoff func() backoff.BackOff
}

// HTTPResolver resolves references with HTTP GET requests, following redirects.
type HTTPResolver struct {
	client    *http.Client
	timeout   time.Duration
	retries   int
	userAgent string
	newPolicy func() backoff.BackOff
}

var _ Resolver = (*HTTPResolver)(nil)

// NewHTTPResolver creates a resolver; zero options take their defaults.
func NewHTTPResolver(o Options) *HTTPResolver {
	r := &HTTPResolver{
		client:    o.Client,
		timeout:   o.Timeout,
		retries:   o.Retries,
		userAgent: o.UserAgent,
		newPolicy: o.Backoff,
	}
	if r.client == nil {
		r.client = &http.Client{Transport: http.DefaultTransport.(*http.Transport).Clone()}
	}
	if r.timeout <= 0 {
		r.timeout = DefaultTimeout
	}
	if r.retries < 0 {
		r.retries = 0
	}
	if r.userAgent == "" {
		r.userAgent = DefaultUserAgent
	}
	if r.newPolicy == nil {
		r.newPolicy = func() backoff.BackOff { return backoff.NewExponentialBackOff() }
	}
	return r
}

// normalize checks the scheme of a reference and converts an international
// host name to its ASCII form.
func normalize(iri string) (string, error) {
	u, err := url.Parse(iri)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("%w: no host in %q", ErrMalformed, iri)
	}
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if port := u.Port(); port != "" {
		ascii = net.JoinHostPort(ascii, port)
	}
	u.Host = ascii
	return u.String(), nil
}

// Resolve issues a GET request for iri. It never returns an error other than
// through Result.Err.
func (r *HTTPResolver) Resolve(ctx context.Context, iri string) Result {
	res := Result{IRI: iri}
	start := time.Now()
	defer func() {
		mRequestSeconds.Observe(time.Since(start).Seconds())
		switch {
		case res.Err != nil:
			mRequests.WithLabelValues(outcomeError).Inc()
			if clog.V(2) {
				clog.Infof("link %s is broken: %v", iri, res.Err)
			}
		case !res.Reachable():
			mRequests.WithLabelValues(outcomeStatus).Inc()
			if clog.V(2) {
				clog.Infof("link %s is broken: status %d", iri, res.Status)
			}
		default:
			mRequests.WithLabelValues(outcomeOK).Inc()
		}
	}()

	target, err := normalize(iri)
	if err != nil {
		res.Err = err
		return res
	}
	attempt := 0
	op := func() error {
		if attempt > 0 {
			mRetries.Inc()
		}
		attempt++
		status, err := r.get(ctx, target)
		if err != nil {
			return err
		}
		res.Status = status
		return nil
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(r.newPolicy(), uint64(r.retries)), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		res.Err = err
	}
	return res
}

func (r *HTTPResolver) get(ctx context.Context, target string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, backoff.Permanent(fmt.Errorf("%w: %v", ErrMalformed, err))
	}
	req.Header.Set("User-Agent", r.userAgent)
	resp, err := r.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	// drain a bounded amount so the connection can be reused
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	return resp.StatusCode, nil
}
