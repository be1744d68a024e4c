package clientip

import (
	"net"
	"net/http"
	"strings"
)

// FromRequest returns the best-effort client IP: the first entry of the
// X-Forwarded-For header when a proxy set one, otherwise the connection's
// remote address with the port stripped.
func FromRequest(r *http.Request) string {
	if header := r.Header.Get("X-Forwarded-For"); header != "" {
		for _, part := range strings.Split(header, ",") {
			if ip := strings.TrimSpace(part); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
