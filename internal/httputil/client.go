// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP plumbing shared by the external
// service backends.
package httputil

import (
	"net/http"
	"time"

	"github.com/pdiddy/paperforge/pkg/types"
)

const defaultTimeout = 60 * time.Second

// NewClient builds the client used for research API calls. The timeout
// bounds the whole request. There are no retries: a failed call makes
// its one-shot degrade-or-fail decision at the stage boundary.
func NewClient(cfg types.HTTPConfig) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &userAgentTransport{agent: cfg.UserAgent, next: http.DefaultTransport},
	}
}

// userAgentTransport stamps a User-Agent on requests that lack one.
type userAgentTransport struct {
	agent string
	next  http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.agent != "" && req.Header.Get("User-Agent") == "" {
		clone := req.Clone(req.Context())
		clone.Header.Set("User-Agent", t.agent)
		return t.next.RoundTrip(clone)
	}
	return t.next.RoundTrip(req)
}
