// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package logger holds the structured logger shared by
// every package in the module.
package logger

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards all records.
// Enabled reports false, so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var ptr atomic.Pointer[slog.Logger]

func init() { ptr.Store(slog.New(nopHandler{})) }

// Set replaces the logger.
// A nil l restores the default, silent logger.
// It is safe for concurrent use.
func Set(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	ptr.Store(l)
}

// Get returns the current logger.
// It is safe for concurrent use.
func Get() *slog.Logger { return ptr.Load() }
