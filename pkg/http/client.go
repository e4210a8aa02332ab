package http

import (
	"net"
	"net/http"
	"time"
)

// TransportFunc wraps the round tripper of the outbound client
type TransportFunc func(http.RoundTripper) http.RoundTripper

type ClientOption func(*clientConfig)

type clientConfig struct {
	dialTimeout           time.Duration
	requestTimeout        time.Duration
	keepAlive             time.Duration
	responseHeaderTimeout time.Duration
	idleConnTimeout       time.Duration
	maxIdleConnsPerHost   int
	transports            []TransportFunc
}

func defaultClientConfig() *clientConfig {
	return &clientConfig{
		dialTimeout:           5 * time.Second,
		requestTimeout:        20 * time.Second,
		keepAlive:             90 * time.Second,
		responseHeaderTimeout: 10 * time.Second,
		idleConnTimeout:       90 * time.Second,
		maxIdleConnsPerHost:   10,
	}
}

func WithTimeouts(dial, request, responseHeader time.Duration) ClientOption {
	return func(c *clientConfig) {
		if dial > 0 {
			c.dialTimeout = dial
		}
		if request > 0 {
			c.requestTimeout = request
		}
		if responseHeader > 0 {
			c.responseHeaderTimeout = responseHeader
		}
	}
}

func WithKeepAlive(keepAlive, idleConnTimeout time.Duration) ClientOption {
	return func(c *clientConfig) {
		if keepAlive > 0 {
			c.keepAlive = keepAlive
		}
		if idleConnTimeout > 0 {
			c.idleConnTimeout = idleConnTimeout
		}
	}
}

func WithMaxIdleConnsPerHost(n int) ClientOption {
	return func(c *clientConfig) {
		c.maxIdleConnsPerHost = n
	}
}

func WithTransport(transport TransportFunc) ClientOption {
	return func(c *clientConfig) {
		c.transports = append(c.transports, transport)
	}
}

func newClient(opts ...ClientOption) *http.Client {
	cfg := defaultClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	dialer := net.Dialer{
		Timeout:   cfg.dialTimeout,
		KeepAlive: cfg.keepAlive,
	}

	var transport http.RoundTripper = &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		MaxIdleConns:          5 * cfg.maxIdleConnsPerHost,
		MaxIdleConnsPerHost:   cfg.maxIdleConnsPerHost,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: cfg.responseHeaderTimeout,
		IdleConnTimeout:       cfg.idleConnTimeout,
	}

	// Wrappers are applied in order, so the last one registered runs first
	for _, wrap := range cfg.transports {
		transport = wrap(transport)
	}

	return &http.Client{
		Timeout:   cfg.requestTimeout,
		Transport: transport,
	}
}
