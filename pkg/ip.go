package pkg

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// docker bridge networks hand out gateways from this range
var dockerBridges = netip.MustParsePrefix("172.16.0.0/12")

// IsLocalAddr reports loopback callers and the docker bridge gateway (x.x.0.1),
// which is how requests proxied from the host show up inside a container.
func IsLocalAddr(addr netip.Addr) bool {
	addr = addr.Unmap()
	if addr.IsLoopback() {
		return true
	}
	if !dockerBridges.Contains(addr) {
		return false
	}
	b := addr.As4()
	return b[2] == 0 && b[3] == 1
}

// ReadUserIP returns the client IP, preferring proxy headers over the remote addr.
// Local callers are reported as "localhost".
func ReadUserIP(r *http.Request) (string, error) {
	raw := r.Header.Get("X-Real-Ip")
	if raw == "" {
		raw, _, _ = strings.Cut(r.Header.Get("X-Forwarded-For"), ",")
		raw = strings.TrimSpace(raw)
	}
	if raw == "" {
		raw = r.RemoteAddr
	}

	host := raw
	if h, _, err := net.SplitHostPort(raw); err == nil {
		host = h
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return "", fmt.Errorf("invalid client addr [%s]", raw)
	}

	if IsLocalAddr(addr) {
		return "localhost", nil
	}
	return addr.Unmap().String(), nil
}
