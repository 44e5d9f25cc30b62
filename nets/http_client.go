package nets

import (
	"net/http"
	"time"
)

type HTTPClient = *http.Client

// HTTPClient fetches remote scripts. Proxying happens in the dialer, so the
// transport ignores the proxy environment.
func (Module) HTTPClient(
	dialer Dialer,
) HTTPClient {
	return &http.Client{
		Timeout: time.Minute,
		Transport: &http.Transport{
			DialContext:           dialer.DialContext,
			ForceAttemptHTTP2:     true,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 30 * time.Second,
			IdleConnTimeout:       90 * time.Second,
			MaxIdleConns:          4,
		},
	}
}
