package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dedup/internal/adapters/logger"
)

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{name: "info level", level: slog.LevelInfo, msg: "information message", goldenName: "handler_info"},
		{name: "warn level", level: slog.LevelWarn, msg: "warning message", goldenName: "handler_warn"},
		{name: "error level", level: slog.LevelError, msg: "error message", goldenName: "handler_error"},
		{name: "debug level filtered", level: slog.LevelDebug, msg: "debug message", goldenName: "handler_debug_filtered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			handler := logger.NewPrettyHandler(buf, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			})
			lg := slog.New(handler)

			lg.Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(h slog.Handler) slog.Handler
		msg        string
		args       []any
		goldenName string
	}{
		{
			name:       "single attribute",
			setup:      func(h slog.Handler) slog.Handler { return h.WithAttrs([]slog.Attr{slog.String("key", "value")}) },
			msg:        "single attr message",
			goldenName: "handler_attrs_single",
		},
		{
			name: "group attribute",
			setup: func(h slog.Handler) slog.Handler {
				return h.WithAttrs([]slog.Attr{slog.Group("g", slog.String("k", "v"))})
			},
			msg:        "group attr message",
			goldenName: "handler_attrs_group",
		},
		{
			name: "nested group attribute",
			setup: func(h slog.Handler) slog.Handler {
				return h.WithAttrs([]slog.Attr{slog.Group("outer", slog.Group("inner", slog.String("k", "v")))})
			},
			msg:        "nested group message",
			goldenName: "handler_attrs_nested_group",
		},
		{
			name:       "nested groups on handler",
			setup:      func(h slog.Handler) slog.Handler { return h.WithGroup("a").WithGroup("b") },
			msg:        "nested group message",
			args:       []any{"key", "val"},
			goldenName: "handler_group_nested",
		},
		{
			name:       "empty group name is ignored",
			setup:      func(h slog.Handler) slog.Handler { return h.WithGroup("") },
			msg:        "empty group test",
			args:       []any{"key", "val"},
			goldenName: "handler_group_empty",
		},
		{
			name: "group with handler and record attrs",
			setup: func(h slog.Handler) slog.Handler {
				return h.WithGroup("req").WithAttrs([]slog.Attr{slog.String("id", "123")})
			},
			msg:        "grouped message",
			args:       []any{"extra", "data"},
			goldenName: "handler_combined_group",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			base := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})
			lg := slog.New(tt.setup(base))

			lg.Info(tt.msg, tt.args...)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_Enabled(t *testing.T) {
	tests := []struct {
		name         string
		handlerLevel slog.Level
		recordLevel  slog.Level
		wantEnabled  bool
	}{
		{name: "debug below info", handlerLevel: slog.LevelInfo, recordLevel: slog.LevelDebug, wantEnabled: false},
		{name: "info at info", handlerLevel: slog.LevelInfo, recordLevel: slog.LevelInfo, wantEnabled: true},
		{name: "error above info", handlerLevel: slog.LevelInfo, recordLevel: slog.LevelError, wantEnabled: true},
		{name: "debug at debug", handlerLevel: slog.LevelDebug, recordLevel: slog.LevelDebug, wantEnabled: true},
		{name: "warn at error", handlerLevel: slog.LevelError, recordLevel: slog.LevelWarn, wantEnabled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := logger.NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{
				Level: tt.handlerLevel,
			})
			assert.Equal(t, tt.wantEnabled, handler.Enabled(t.Context(), tt.recordLevel))
		})
	}
}

func TestPrettyHandler_NilWriter(t *testing.T) {
	require.NotPanics(t, func() {
		_ = logger.NewPrettyHandler(nil, nil)
	})
}

func TestPrettyHandler_Handle_ReturnsError(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	handler := logger.NewPrettyHandler(&brokenWriter{}, &slog.HandlerOptions{Level: slog.LevelInfo})
	lg := slog.New(handler)

	require.NotPanics(t, func() {
		lg.Info("this will fail to write")
	})
}

// brokenWriter simulates a writer that always returns an error.
type brokenWriter struct{}

func (bw *brokenWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}
