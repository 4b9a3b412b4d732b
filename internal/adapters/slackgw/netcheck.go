package slackgw

import (
	"log/slog"
	"net"
	"time"
)

// Pre-connect reachability probes. Failures are logged, never fatal: the
// supervisor's retry loop is the recovery mechanism.

func checkIPv4(logger *slog.Logger) {
	conn, err := net.DialTimeout("tcp4", "8.8.8.8:53", 3*time.Second)
	if err != nil {
		logger.Warn("IPv4 seems not working", "error", err)
		return
	}
	_ = conn.Close()

	logger.Debug("IPv4 OK")
}

func checkSlackEndpoint(logger *slog.Logger) {
	conn, err := net.DialTimeout("tcp", "slack.com:443", 3*time.Second)
	if err != nil {
		logger.Warn("slack endpoint unreachable", "error", err)
		return
	}
	_ = conn.Close()

	logger.Debug("slack endpoint reachable")
}
