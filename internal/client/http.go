package client

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient creates the HTTP client the harness issues all requests
// through. Per-request deadlines are applied via context, not here.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Transport: NewHTTPTransport(),
	}
}

// NewHTTPTransport creates a transport sized for a single sequential caller.
func NewHTTPTransport() *http.Transport {
	return &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        2,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,
		DisableCompression:  true,
		ForceAttemptHTTP2:   false,
	}
}
