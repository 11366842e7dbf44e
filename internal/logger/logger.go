package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

// Log is the process-wide logger. It discards everything until Init is called.
var Log = zap.NewNop()

// logFile is the file opened by the last Init, if any.
var logFile io.Closer

// Init builds the logger for the named service.
// level is one of debug, info, warn or error; anything else falls back to info.
// Entries go to stderr, and also to logFile when it is not empty.
// A file left open by a previous Init is closed.
func Init(serviceName, level, path string) error {
	writeSyncers := []zapcore.WriteSyncer{zapcore.AddSync(os.Stderr)}

	var file *os.File
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		file = f
		writeSyncers = append(writeSyncers, zapcore.AddSync(file))
	}

	if err := Close(); err != nil {
		if file != nil {
			_ = file.Close()
		}
		return err
	}
	Log = New(serviceName, level, zapcore.NewMultiWriteSyncer(writeSyncers...))
	if file != nil {
		logFile = file
	}
	return nil
}

// New returns a JSON logger writing to w.
func New(serviceName, level string, w io.Writer) *zap.Logger {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zap.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.MessageKey = "msg"

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(w),
		zapLevel,
	)

	// skip one frame so the caller of Info/Error is reported, not this file
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).
		With(zap.String("service", serviceName))
}

// WithCommand returns a context whose log entries carry the CLI command name.
func WithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, ctxKey{}, command)
}

// Info logs msg at info level, adding the command carried by ctx.
func Info(ctx context.Context, msg string, fields ...zap.Field) {
	Log.Info(msg, withContext(ctx, fields)...)
}

// Warn logs msg at warn level, adding the command carried by ctx.
func Warn(ctx context.Context, msg string, fields ...zap.Field) {
	Log.Warn(msg, withContext(ctx, fields)...)
}

// Error logs msg at error level, adding the command carried by ctx.
func Error(ctx context.Context, msg string, fields ...zap.Field) {
	Log.Error(msg, withContext(ctx, fields)...)
}

// Debug logs msg at debug level, adding the command carried by ctx.
func Debug(ctx context.Context, msg string, fields ...zap.Field) {
	Log.Debug(msg, withContext(ctx, fields)...)
}

func withContext(ctx context.Context, fields []zap.Field) []zap.Field {
	if ctx == nil {
		return fields
	}
	if command, ok := ctx.Value(ctxKey{}).(string); ok && command != "" {
		fields = append(fields, zap.String("command", command))
	}
	return fields
}

// Close flushes buffered entries and closes the log file opened by Init.
// Call it before the process exits. Log stays usable and keeps writing to
// stderr.
func Close() error {
	_ = Log.Sync()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
