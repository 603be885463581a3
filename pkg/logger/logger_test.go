package logger

import (
	"log/slog"
	"testing"

	"github.com/jab1897/LoneStarLedger5/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetupRejectsUnsupportedOutput(t *testing.T) {
	// Only stdout and stderr are supported sinks.
	err := Setup(config.LogConfig{Level: "info", Format: "json", Output: "file"})
	if err == nil {
		t.Fatal("want error for unsupported output")
	}
}

func TestSetupRejectsUnknownFormat(t *testing.T) {
	err := Setup(config.LogConfig{Level: "info", Format: "logfmt", Output: "stdout"})
	if err == nil {
		t.Fatal("want error for unknown format")
	}
}
