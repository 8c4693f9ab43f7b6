package logger

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	infos, warns, errs []string
}

func (r *recordingLogger) Debug(_ interface{}, _ ...interface{}) {}
func (r *recordingLogger) Info(m string, _ ...interface{})       { r.infos = append(r.infos, m) }
func (r *recordingLogger) Warn(m string, _ ...interface{})       { r.warns = append(r.warns, m) }
func (r *recordingLogger) Error(m interface{}, _ ...interface{}) {
	if s, ok := m.(string); ok {
		r.errs = append(r.errs, s)
	}
}
func (r *recordingLogger) Fatal(_ interface{}, _ ...interface{}) {}

func TestLineWriter_SplitsLines(t *testing.T) {
	t.Parallel()

	rec := &recordingLogger{}

	w := infoWriter(rec)
	n, err := w.Write([]byte("hello\r\n"))

	assert.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, []string{"hello"}, rec.infos)

	_, _ = errorWriter(rec).Write([]byte("boom\n\n  second  \n"))
	assert.Equal(t, []string{"boom", "second"}, rec.errs)

	_, _ = warnWriter(rec).Write([]byte("\n \r\n"))
	assert.Empty(t, rec.warns)
}

func TestRedisLogger_PrefixesWarn(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	zl := zerolog.New(&buf)
	r := redisLogger{l: &Logger{logger: &zl}}

	r.Printf(context.Background(), "pubsub: reconnecting after %s", "EOF")

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "redis - pubsub: reconnecting after EOF")
}

func TestSetupStdLog_RoutesToWarn(t *testing.T) { //nolint:paralleltest // mutates global log output
	rec := &recordingLogger{}

	SetupStdLog(rec)

	defer log.SetOutput(&bytes.Buffer{})

	log.Print("from std")

	assert.Equal(t, []string{"from std"}, rec.warns)
}

func TestLogger_ErrorWithTag(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	zl := zerolog.New(&buf)
	l := &Logger{logger: &zl}

	l.Error(errors.New("upstream down"), "http - v1 - status")

	assert.Contains(t, buf.String(), `"error":"upstream down"`)
	assert.Contains(t, buf.String(), `"message":"http - v1 - status"`)
}

func TestLogger_InfoFormats(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	zl := zerolog.New(&buf)
	l := &Logger{logger: &zl}

	l.Info("listening on %s", ":8080")

	assert.Contains(t, buf.String(), "listening on :8080")
}
