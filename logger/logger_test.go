package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
		enabled zapcore.Level
		off     zapcore.Level
	}{
		{"default", DefaultConfig(), false, zapcore.InfoLevel, zapcore.DebugLevel},
		{"development", DevelopmentConfig(), false, zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"bad level falls back", Config{Level: "loud", Format: "json"}, false, zapcore.InfoLevel, zapcore.DebugLevel},
		{"warn", Config{Level: "warn", Format: "console"}, false, zapcore.WarnLevel, zapcore.InfoLevel},
		{"bad format", Config{Level: "info", Format: "xml"}, true, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := New(tc.cfg)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("new: %v", err)
			}
			if !l.Core().Enabled(tc.enabled) {
				t.Fatalf("%v should be enabled", tc.enabled)
			}
			if l.Core().Enabled(tc.off) {
				t.Fatalf("%v should be disabled", tc.off)
			}
		})
	}
}

func TestNop(t *testing.T) {
	if Nop().Core().Enabled(zapcore.ErrorLevel) {
		t.Fatal("nop logger should drop everything")
	}
}
