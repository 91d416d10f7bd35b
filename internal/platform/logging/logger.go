// Package logging wraps zap with key/value methods and trace correlation.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

// Format selects the line encoding.
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

// ParseLevel accepts debug, info, warn (or warning) and error in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Logger logs key/value pairs. A nil *Logger logs through Default.
type Logger struct {
	z *zap.Logger
}

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(NewNop())
}

// New writes lines to w, stderr when w is nil. Command output owns stdout.
func New(format Format, level Level, w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}

	enc := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var (
		encoder zapcore.Encoder
		opts    []zap.Option
	)
	switch format {
	case FormatJSON:
		encoder = zapcore.NewJSONEncoder(enc)
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(2), zap.AddStacktrace(zapcore.ErrorLevel))
	default:
		enc.CallerKey = zapcore.OmitKey
		enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		encoder = zapcore.NewConsoleEncoder(enc)
	}

	return FromZap(zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), level), opts...))
}

func NewConsole(level Level, w io.Writer) *Logger {
	return New(FormatConsole, level, w)
}

func NewNop() *Logger {
	return FromZap(zap.NewNop())
}

func FromZap(z *zap.Logger) *Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &Logger{z: z}
}

func Default() *Logger {
	return defaultLogger.Load()
}

func SetDefault(logger *Logger) {
	if logger == nil {
		logger = NewNop()
	}
	defaultLogger.Store(logger)
}

func (l *Logger) core() *zap.Logger {
	if l == nil {
		return Default().z
	}
	return l.z
}

func (l *Logger) Sync() error {
	return l.core().Sync()
}

// With returns a child logger that adds args to every line.
func (l *Logger) With(args ...any) *Logger {
	return FromZap(l.core().With(fields(nil, args)...))
}

func (l *Logger) Debug(msg string, args ...any) { l.write(nil, LevelDebug, msg, args) }
func (l *Logger) Info(msg string, args ...any)  { l.write(nil, LevelInfo, msg, args) }
func (l *Logger) Warn(msg string, args ...any)  { l.write(nil, LevelWarn, msg, args) }
func (l *Logger) Error(msg string, args ...any) { l.write(nil, LevelError, msg, args) }

func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.write(ctx, LevelDebug, msg, args)
}

func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.write(ctx, LevelInfo, msg, args)
}

func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.write(ctx, LevelWarn, msg, args)
}

func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.write(ctx, LevelError, msg, args)
}

func (l *Logger) write(ctx context.Context, level Level, msg string, args []any) {
	ce := l.core().Check(level, msg)
	if ce == nil {
		return
	}
	ce.Write(fields(ctx, args)...)
}

// fields converts alternating key/value args. Non-string keys become "arg",
// a dangling key gets a nil value, and error values are logged as errors.
// When ctx carries a valid span its trace and span ids are appended.
func fields(ctx context.Context, args []any) []zap.Field {
	out := make([]zap.Field, 0, len(args)/2+3)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok || key == "" {
			key = "arg"
		}
		if i+1 == len(args) {
			out = append(out, zap.Any(key, nil))
			break
		}
		if err, ok := args[i+1].(error); ok {
			out = append(out, zap.NamedError(key, err))
			continue
		}
		out = append(out, zap.Any(key, args[i+1]))
	}

	if ctx == nil {
		return out
	}
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		out = append(out,
			zap.String("trace_id", sc.TraceID().String()),
			zap.String("span_id", sc.SpanID().String()),
		)
	}
	return out
}
