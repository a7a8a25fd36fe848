package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	_, err := New("", "", &bytes.Buffer{})
	assert.Error(t, err)

	_, err = New("APP", "", nil)
	assert.Error(t, err)

	l, err := New("APP", "\033[32m", &bytes.Buffer{})
	require.NoError(t, err)
	assert.NotNil(t, l)
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("LEVEL", "", &buf)
	require.NoError(t, err)

	l.Info("created")
	l.Warning("cache miss")
	l.Error("store down")

	out := buf.String()
	assert.Contains(t, out, "[LEVEL] [INFO] created")
	assert.Contains(t, out, "[LEVEL] [WARNING] cache miss")
	assert.Contains(t, out, "[LEVEL] [ERROR] store down")
}

func TestLoggerColor(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("APP", "\033[32m", &buf)
	require.NoError(t, err)

	l.Info("up")
	assert.Contains(t, buf.String(), "\033[32m[APP]\033[0m [INFO] up")
}
