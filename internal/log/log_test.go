package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(nopWriter{})
		SetLevel(LevelInfo)
	})
	return &buf
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{" warning ", LevelWarn, false},
		{"Error", LevelError, false},
		{"trace", LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t)
	SetLevel(LevelWarn)

	Debug("d")
	Info("i")
	Warn("w")
	Error("e", errors.New("boom"))

	out := buf.String()
	for _, s := range []string{"[DEBUG]", "[INFO]"} {
		if strings.Contains(out, s) {
			t.Errorf("output contains %s below the minimum level:\n%s", s, out)
		}
	}
	for _, s := range []string{"[WARN] w", "[ERROR] e err=boom"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
}

func TestKeyValues(t *testing.T) {
	buf := capture(t)
	Info("flush", "bytes", 64800, 7, "skipped", "chunks", 64, "dangling")

	line := strings.TrimSpace(buf.String())
	if !strings.HasSuffix(line, "[INFO] flush bytes=64800 chunks=64") {
		t.Errorf("line = %q", line)
	}
}
