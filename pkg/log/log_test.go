package log_test

import (
	"context"
	"testing"

	"conference-tracker/pkg/log"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name string
		cfg  log.ZapConfig
	}{
		{"debug console", log.ZapConfig{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true}},
		{"production json", log.ZapConfig{Level: "info", Mode: "production", Encoding: "json"}},
		{"invalid level falls back", log.ZapConfig{Level: "loudest", Mode: "debug"}},
		{"zero config", log.ZapConfig{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := log.Init(tt.cfg)
			if l == nil {
				t.Fatal("Init returned nil")
			}
			ctx := context.Background()
			l.Debug(ctx, "debug message")
			l.Infof(ctx, "info %s", "message")
			l.Warn(ctx, "warn message")
		})
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()

	if _, ok := log.RequestIDFromContext(ctx); ok {
		t.Fatal("empty context must carry no request ID")
	}

	ctx = log.ContextWithRequestID(ctx, "req-42")
	id, ok := log.RequestIDFromContext(ctx)
	if !ok || id != "req-42" {
		t.Fatalf("got (%q, %v), want (\"req-42\", true)", id, ok)
	}
}
