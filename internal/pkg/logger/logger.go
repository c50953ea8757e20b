// Package logger wraps zap behind a small package-level API.
//
// The level is held in an AtomicLevel so operators can raise verbosity
// on a running server without a restart.
package logger

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	global = zap.NewNop()
	level  = zap.NewAtomicLevel()
)

// Init builds the global logger. Level is one of debug, info, warn,
// error; format is json or console. Calling Init again replaces the
// previous logger, which tests rely on.
func Init(lvl, format string) error {
	if err := level.UnmarshalText([]byte(lvl)); err != nil {
		return fmt.Errorf("parse log level %q: %w", lvl, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if format == "console" {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), level)

	mu.Lock()
	global = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	mu.Unlock()
	return nil
}

// SetLevel changes the level of the running logger.
func SetLevel(lvl string) error {
	return level.UnmarshalText([]byte(lvl))
}

// GetLevel reports the current level.
func GetLevel() zapcore.Level {
	return level.Level()
}

// L returns the global logger. Before Init it is a no-op logger, so
// packages may log during early startup without crashing.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func Debug(msg string, fields ...zap.Field) { L().Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { L().Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { L().Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { L().Error(msg, fields...) }

// Fatal logs and exits.
func Fatal(msg string, fields ...zap.Field) { L().Fatal(msg, fields...) }

// With returns a child logger carrying the given fields.
func With(fields ...zap.Field) *zap.Logger {
	return L().With(fields...)
}

// Sync flushes buffered entries. Safe to call before Init.
func Sync() error {
	return L().Sync()
}
