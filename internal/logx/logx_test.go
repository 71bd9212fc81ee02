package logx

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"off":     levelOff,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%v want %v", in, got, want)
		}
	}
}

func TestPrettyHandler_LocaleLabels(t *testing.T) {
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, slog.LevelInfo, "zh-CN", "never")
	l := slog.New(h)
	l.Info("hallo", "k", "v")
	out := buf.String()
	if !strings.Contains(out, "[信息]") || !strings.Contains(out, "hallo") || !strings.Contains(out, "k=v") {
		t.Fatalf("output %q", out)
	}

	buf.Reset()
	h = NewPrettyHandler(&buf, slog.LevelInfo, "en", "never")
	slog.New(h).Warn("careful")
	if !strings.Contains(buf.String(), "[WARN]") {
		t.Fatalf("output %q", buf.String())
	}
}

func TestPrettyHandler_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, slog.LevelWarn, "en", "never")
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatalf("info should be filtered at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Fatalf("error should pass at warn level")
	}
	h = NewPrettyHandler(&buf, levelOff, "en", "never")
	if h.Enabled(context.Background(), slog.LevelError) {
		t.Fatalf("off level must silence everything")
	}
}
