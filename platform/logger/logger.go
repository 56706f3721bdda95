package logger

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a thin wrapper around zap that carries a context through every
// call site, so request-scoped metadata can be attached later without
// touching callers.
type Logger struct {
	l *zap.Logger
}

var (
	mu     sync.RWMutex
	global = &Logger{l: zap.NewNop()}
)

func Init(level string, asJSON bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("logger: parse level %q: %w", level, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if asJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(os.Stdout), lvl)

	mu.Lock()
	global = &Logger{l: zap.New(core, zap.AddCaller())}
	mu.Unlock()

	return nil
}

// SetNopLogger silences all output. Used by tests.
func SetNopLogger() {
	mu.Lock()
	global = &Logger{l: zap.NewNop()}
	mu.Unlock()
}

func L() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func With(fields ...Field) *Logger {
	return &Logger{l: L().l.With(fields...)}
}

func Sync() error { return L().l.Sync() }

func (lg *Logger) Debug(ctx context.Context, msg string, fields ...Field) {
	lg.l.Debug(msg, fields...)
}

func (lg *Logger) Info(ctx context.Context, msg string, fields ...Field) {
	lg.l.Info(msg, fields...)
}

func (lg *Logger) Warn(ctx context.Context, msg string, fields ...Field) {
	lg.l.Warn(msg, fields...)
}

func (lg *Logger) Error(ctx context.Context, msg string, fields ...Field) {
	lg.l.Error(msg, fields...)
}

func Debug(ctx context.Context, msg string, fields ...Field) { L().Debug(ctx, msg, fields...) }
func Info(ctx context.Context, msg string, fields ...Field)  { L().Info(ctx, msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...Field)  { L().Warn(ctx, msg, fields...) }
func Error(ctx context.Context, msg string, fields ...Field) { L().Error(ctx, msg, fields...) }
