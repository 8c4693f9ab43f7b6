package httpserver

import (
	"net"
	"time"

	"github.com/smart-parking/console/config"
	"github.com/smart-parking/console/pkg/logger"
)

// Option -.
type Option func(*Server)

// Address listens on host:port. An empty host binds every interface.
func Address(host, port string) Option {
	return func(s *Server) {
		s.server.Addr = net.JoinHostPort(host, port)
	}
}

// TLS serves HTTPS when cfg.Enabled. Without a cert and key a self-signed
// pair is generated in the temp dir and reused.
func TLS(cfg config.TLS) Option {
	return func(s *Server) {
		s.useTLS = cfg.Enabled
		s.certFile = cfg.CertFile
		s.keyFile = cfg.KeyFile
	}
}

// Listener serves on an already bound listener instead of Addr.
func Listener(l net.Listener) Option {
	return func(s *Server) {
		s.listener = l
	}
}

// Timeouts overrides the read, write and idle limits. A zero value keeps the
// default for that limit. Websocket connections set their own deadlines once
// upgraded.
func Timeouts(read, write, idle time.Duration) Option {
	return func(s *Server) {
		if read > 0 {
			s.server.ReadTimeout = read
		}

		if write > 0 {
			s.server.WriteTimeout = write
		}

		if idle > 0 {
			s.server.IdleTimeout = idle
		}
	}
}

// ShutdownGrace bounds how long in-flight requests may run after Shutdown.
func ShutdownGrace(d time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = d
	}
}

// Logger sends the server's own messages and net/http's internal errors
// (TLS handshakes, accept failures) to l.
func Logger(l logger.Interface) Option {
	return func(s *Server) {
		s.log = l
		s.server.ErrorLog = logger.NewStdLogger(l)
	}
}
