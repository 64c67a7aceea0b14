package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevelAndFormat(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel(" DEBUG "))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Info, ParseLevel("verbose"))
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatText, ParseFormat("yaml"))
}

func TestNew_JSONIncludesAppAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "trajectory", Output: &buf})

	l.With(map[string]any{"beneficiary_id": "B1"}).Warn("space lookup failed", map[string]any{
		"error": errors.New("boom"),
		"":      "ignored",
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "space lookup failed", entry["msg"])
	assert.Equal(t, "trajectory", entry["app"])
	assert.Equal(t, "B1", entry["beneficiary_id"])
	assert.Equal(t, "boom", entry["error"])
	assert.NotContains(t, entry, "")
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Format: FormatText, Output: &buf})

	l.Info("hidden", nil)
	l.Error("shown", map[string]any{"k": 1})

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.Contains(out, "shown"))
	assert.True(t, strings.Contains(out, "k=1"))
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().With(map[string]any{"a": 1}).Error("nothing", nil)
	})
}
