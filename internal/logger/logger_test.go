package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewWithWriter_Level(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "warn")
	assert.Equal(t, zerolog.WarnLevel, l.GetLevel())

	l.Info().Msg("hidden")
	l.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewWithWriter_BadLevel(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, zerolog.InfoLevel, NewWithWriter(&buf, "loud").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, NewWithWriter(&buf, "").GetLevel())
}
