package http

import "net/http"

// headerTransport sets fixed headers on every outbound request
type headerTransport struct {
	key, value string
	transport  http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqCopy := req.Clone(req.Context())
	reqCopy.Header.Set(t.key, t.value)

	return t.transport.RoundTrip(reqCopy)
}

func withStaticHeader(key, value string) ClientOption {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		if value == "" {
			return rt
		}
		return &headerTransport{key: key, value: value, transport: rt}
	})
}

// WithAuthToken adds a bearer token to every request. An empty token is a no-op.
func WithAuthToken(token string) ClientOption {
	if token == "" {
		return withStaticHeader("Authorization", "")
	}
	return withStaticHeader("Authorization", "Bearer "+token)
}

func WithUserAgent(userAgent string) ClientOption {
	return withStaticHeader("User-Agent", userAgent)
}
