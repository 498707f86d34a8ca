package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoGoesToOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)

	Info().Str("store", "users").Msg("hydrated")

	out := buf.String()
	assert.True(t, strings.Contains(out, "hydrated"))
	assert.True(t, strings.Contains(out, "users"))
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)

	Debug().Msg("invisible")
	assert.Empty(t, buf.String())
}

func TestSetDebugMode(t *testing.T) {
	var buf bytes.Buffer
	SetDebugMode()
	SetOutput(&buf)

	Debug().Msg("now visible")
	assert.True(t, strings.Contains(buf.String(), "now visible"))
}

func TestSetLevelAppliesNamedLevel(t *testing.T) {
	var buf bytes.Buffer
	SetLevel("warn")
	SetOutput(&buf)

	Info().Msg("quiet")
	assert.Empty(t, buf.String())

	Warn().Msg("loud")
	assert.True(t, strings.Contains(buf.String(), "loud"))

	SetLevel("info")
}

func TestSetLevelDebugEnablesDebugEvents(t *testing.T) {
	var buf bytes.Buffer
	SetLevel("debug")
	SetOutput(&buf)

	Debug().Msg("configured visible")
	assert.True(t, strings.Contains(buf.String(), "configured visible"))

	SetLevel("info")
}

func TestSetLevelIgnoresUnknownName(t *testing.T) {
	var buf bytes.Buffer
	SetLevel("info")
	SetLevel("verbose")
	SetOutput(&buf)

	Info().Msg("still info")
	assert.True(t, strings.Contains(buf.String(), "still info"))
}
