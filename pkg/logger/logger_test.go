package logger

import (
	"path/filepath"
	"testing"

	"quiz_progress_backend/internal/config"

	"go.uber.org/zap/zapcore"
)

func TestSetLevel(t *testing.T) {
	tests := []struct {
		mode, level string
		want        zapcore.Level
	}{
		{mode: "release", level: "warn", want: zapcore.WarnLevel},
		{mode: "release", level: "nonsense", want: zapcore.InfoLevel},
		{mode: "debug", level: "error", want: zapcore.DebugLevel},
	}
	for _, tt := range tests {
		cfg := &config.Config{Server: config.ServerConfig{Mode: tt.mode}, Log: config.LogConfig{Level: tt.level}}
		SetLevel(cfg)
		if got := Level(); got != tt.want {
			t.Fatalf("mode=%s level=%s: got=%s want=%s", tt.mode, tt.level, got, tt.want)
		}
	}
}

func TestInitLoggerReplacesNop(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "release"},
		Log:    config.LogConfig{File: filepath.Join(t.TempDir(), "app.log"), Level: "info"},
	}
	InitLogger(cfg)
	if Log.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("debug should be disabled at info level")
	}
	if !Log.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("info should be enabled")
	}
	_ = Log.Sync()
}
