package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		want    zapcore.Level
		wantErr bool
	}{
		{name: "json info", level: "info", format: "json", want: zapcore.InfoLevel},
		{name: "console debug", level: "debug", format: "console", want: zapcore.DebugLevel},
		{name: "json warn", level: "warn", format: "json", want: zapcore.WarnLevel},
		{name: "bad level", level: "shouty", format: "json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Init(tt.level, tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Init(%q, %q) error = %v, wantErr %v", tt.level, tt.format, err, tt.wantErr)
			}
			if !tt.wantErr && GetLevel() != tt.want {
				t.Fatalf("GetLevel() = %v, want %v", GetLevel(), tt.want)
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	if err := Init("info", "json"); err != nil {
		t.Fatal(err)
	}

	if err := SetLevel("debug"); err != nil {
		t.Fatalf("SetLevel(debug) error = %v", err)
	}
	if GetLevel() != zapcore.DebugLevel {
		t.Fatalf("GetLevel() = %v after SetLevel(debug)", GetLevel())
	}

	if err := SetLevel("nonsense"); err == nil {
		t.Fatal("SetLevel accepted an invalid level")
	}
	if GetLevel() != zapcore.DebugLevel {
		t.Fatal("failed SetLevel changed the level")
	}
}

func TestBeforeInitIsSafe(t *testing.T) {
	// The zero-value logger is a nop: logging and Sync must not panic
	// even when Init was never called.
	Info("startup message before init")
	if err := Sync(); err != nil {
		t.Fatalf("Sync() before Init error = %v", err)
	}
	if L() == nil {
		t.Fatal("L() returned nil before Init")
	}
}

func TestWith(t *testing.T) {
	if err := Init("info", "json"); err != nil {
		t.Fatal(err)
	}
	if With() == nil {
		t.Fatal("With() returned nil")
	}
}

func TestLoggingDoesNotPanic(t *testing.T) {
	if err := Init("debug", "console"); err != nil {
		t.Fatal(err)
	}
	Debug("debug line")
	Info("info line")
	Warn("warn line")
	Error("error line")
}
