package logger

import (
	"bytes"
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// lineWriter is an io.Writer for libraries that only log to a writer. Every
// non-blank line of a write becomes one log entry.
type lineWriter struct {
	emit func(line string)
}

func (w lineWriter) Write(p []byte) (int, error) {
	for _, line := range bytes.Split(p, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		w.emit(string(line))
	}

	return len(p), nil
}

func infoWriter(l Interface) lineWriter {
	return lineWriter{emit: func(line string) { l.Info(line) }}
}

func warnWriter(l Interface) lineWriter {
	return lineWriter{emit: func(line string) { l.Warn(line) }}
}

func errorWriter(l Interface) lineWriter {
	return lineWriter{emit: func(line string) { l.Error(line) }}
}

// SetupStdLog sends the standard library logger to l at warn level.
func SetupStdLog(l Interface) {
	log.SetFlags(0)
	log.SetOutput(warnWriter(l))
}

// SetupGin sends gin's access log to info and its errors to error.
func SetupGin(l Interface) {
	gin.DefaultWriter = infoWriter(l)
	gin.DefaultErrorWriter = errorWriter(l)
}

// redisLogger receives go-redis internal messages: reconnects, pubsub
// resubscribes and pool errors.
type redisLogger struct {
	l Interface
}

func (r redisLogger) Printf(_ context.Context, format string, v ...interface{}) {
	r.l.Warn("redis - "+format, v...)
}

// SetupRedis routes go-redis logging through l. go-redis keeps a single
// process-wide logger.
func SetupRedis(l Interface) {
	redis.SetLogger(redisLogger{l: l})
}

// NewStdLogger returns a *log.Logger writing to l at error level, for APIs
// such as http.Server.ErrorLog that take one.
func NewStdLogger(l Interface) *log.Logger {
	return log.New(errorWriter(l), "", 0)
}
