package golingo

import (
	"context"
	"net"
	"time"
)

// StaticChecker is a ConnectivityChecker with a fixed answer, for tests and
// for hosts where the platform supplies its own reachability signal.
type StaticChecker bool

// Online implements ConnectivityChecker.
func (s StaticChecker) Online(ctx context.Context) bool {
	return bool(s)
}

// ProbeChecker reports connectivity by dialing a well-known host. A failed
// or timed-out dial means offline; the probe never returns an error because
// the routing decision only needs a boolean.
type ProbeChecker struct {
	Addr    string        // host:port to dial (default "1.1.1.1:443")
	Timeout time.Duration // per-probe timeout (default 2s)
}

// Online implements ConnectivityChecker.
func (p ProbeChecker) Online(ctx context.Context) bool {
	addr := p.Addr
	if addr == "" {
		addr = "1.1.1.1:443"
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}

	dialer := net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

var (
	_ ConnectivityChecker = StaticChecker(false)
	_ ConnectivityChecker = ProbeChecker{}
)
