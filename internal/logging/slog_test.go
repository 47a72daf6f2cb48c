package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	return NewSlogLogger(slog.New(slog.NewJSONHandler(buf, nil))), buf
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestInfoWritesMessageAndAttrs(t *testing.T) {
	log, buf := newBufLogger(t)

	log.Info(context.Background(), "page loaded", "slug", "home")

	rec := lastRecord(t, buf)
	assert.Equal(t, "page loaded", rec["msg"])
	assert.Equal(t, "home", rec["slug"])
	assert.Equal(t, "INFO", rec["level"])
}

func TestWithAddsPersistentAttrs(t *testing.T) {
	log, buf := newBufLogger(t)

	child := log.With("module", "httpapi")
	child.Error(context.Background(), "boom")

	rec := lastRecord(t, buf)
	assert.Equal(t, "httpapi", rec["module"])
	assert.Equal(t, "ERROR", rec["level"])
}
