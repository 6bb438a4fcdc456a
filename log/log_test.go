/*
 * MIT License
 *
 * Copyright (c) 2025 Vincent Maciejewski, M2 Tech
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoLoggedAsJSON(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(InfoLevel, buffer)

	logger.Info("connected")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "connected", entry["msg"])
	assert.Contains(t, entry, "ts")
	assert.Contains(t, entry, "caller")
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(InfoLevel, buffer)

	logger.Debug("hidden")
	assert.Zero(t, buffer.Len())

	logger.Debugf("hidden %d", 1)
	assert.Zero(t, buffer.Len())
}

func TestFormattedLevels(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(DebugLevel, buffer)

	logger.Debugf("d %d", 1)
	logger.Infof("i %d", 2)
	logger.Warnf("w %d", 3)
	logger.Errorf("e %d", 4)

	lines := bytes.Split(bytes.TrimSpace(buffer.Bytes()), []byte("\n"))
	require.Len(t, lines, 4)

	expected := []struct{ level, msg string }{
		{"debug", "d 1"},
		{"info", "i 2"},
		{"warn", "w 3"},
		{"error", "e 4"},
	}
	for i, want := range expected {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(lines[i], &entry))
		assert.Equal(t, want.level, entry["level"])
		assert.Equal(t, want.msg, entry["msg"])
	}
}

func TestPanicLevel(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(DebugLevel, buffer)

	assert.Panics(t, func() { logger.Panic("boom") })
	assert.Panics(t, func() { logger.Panicf("boom %d", 2) })
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, InfoLevel, New(InfoLevel, new(bytes.Buffer)).LogLevel())
	assert.Equal(t, DebugLevel, New(DebugLevel, new(bytes.Buffer)).LogLevel())
	assert.Equal(t, ErrorLevel, New(ErrorLevel, new(bytes.Buffer)).LogLevel())
}

func TestLogOutput(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(InfoLevel, buffer)
	outputs := logger.LogOutput()
	require.Len(t, outputs, 1)
	assert.Same(t, buffer, outputs[0].(*bytes.Buffer))
}

func TestDiscardLoggerSwallowsEverything(t *testing.T) {
	DiscardLogger.Info("nothing")
	DiscardLogger.Errorf("nothing %d", 1)
	assert.Equal(t, InvalidLevel, DiscardLogger.LogLevel())
	assert.Nil(t, DiscardLogger.LogOutput())
	assert.Panics(t, func() { DiscardLogger.Panic("still panics") })
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "INFO", InfoLevel.String())
	assert.Equal(t, "DEBUG", DebugLevel.String())
	assert.Equal(t, "WARNING", WarningLevel.String())
	assert.Equal(t, "ERROR", ErrorLevel.String())
	assert.Empty(t, InvalidLevel.String())
}

func TestStdLogger(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(InfoLevel, buffer)
	std := logger.StdLogger()
	require.NotNil(t, std)
	std.Print("via stdlib")
	assert.Contains(t, buffer.String(), "via stdlib")
}
