// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	l := Get()
	if l == nil {
		t.Fatal("Get:\nhave nil\nwant non-nil")
	}
	for _, lv := range [...]slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l.Enabled(context.Background(), lv) {
			t.Fatalf("Get().Enabled(%v):\nhave true\nwant false", lv)
		}
	}
}

func TestSet(t *testing.T) {
	defer Set(nil)

	var buf bytes.Buffer
	Set(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	Get().Debug("format selected", "format", "D32f")
	if s := buf.String(); !strings.Contains(s, "format selected") || !strings.Contains(s, "D32f") {
		t.Fatalf("Get().Debug: output %q\nwant message and attribute", s)
	}

	Set(nil)
	buf.Reset()
	Get().Error("discarded")
	if buf.Len() != 0 {
		t.Fatalf("Set(nil): output %q\nwant empty", buf.String())
	}
}
