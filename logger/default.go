package logger

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func init() {
	lvl, err := GetLevel(os.Getenv("CAMEL_LOG_LEVEL"))
	if err != nil {
		lvl = InfoLevel
	}

	DefaultLogger = NewLogger(WithLevel(lvl))
}

type zaplog struct {
	sync.RWMutex
	opts Options
	zap  *zap.Logger
}

// Init (opts...) should only overwrite provided options.
func (l *zaplog) Init(opts ...Option) error {
	l.Lock()
	defer l.Unlock()

	for _, o := range opts {
		o(&l.opts)
	}

	core := l.opts.Core
	if core == nil {
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.TimeKey = "ts"
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		var enc zapcore.Encoder
		switch l.opts.Encoding {
		case "json":
			enc = zapcore.NewJSONEncoder(encCfg)
		default:
			enc = zapcore.NewConsoleEncoder(encCfg)
		}

		// level gating happens in Log so trace stays distinct from debug
		core = zapcore.NewCore(enc, zapcore.AddSync(l.opts.Out), zapcore.DebugLevel)
	}

	zl := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(l.opts.CallerSkipCount))

	if len(l.opts.Fields) > 0 {
		fields := make([]zap.Field, 0, len(l.opts.Fields))
		for k, v := range l.opts.Fields {
			fields = append(fields, zap.Any(k, v))
		}
		zl = zl.With(fields...)
	}

	l.zap = zl

	return nil
}

func (l *zaplog) String() string {
	return "zap"
}

func (l *zaplog) Fields(fields map[string]interface{}) Logger {
	l.RLock()
	nfields := copyFields(l.opts.Fields)
	opts := l.opts
	l.RUnlock()

	for k, v := range fields {
		nfields[k] = v
	}

	return NewLogger(
		WithLevel(opts.Level),
		WithFields(nfields),
		WithOutput(opts.Out),
		WithEncoding(opts.Encoding),
		WithCore(opts.Core),
		WithCallerSkipCount(opts.CallerSkipCount),
	)
}

func copyFields(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		dst[k] = v
	}

	return dst
}

func (l *zaplog) Log(level Level, v ...interface{}) {
	l.write(level, fmt.Sprint(v...))
}

func (l *zaplog) Logf(level Level, format string, v ...interface{}) {
	l.write(level, fmt.Sprintf(format, v...))
}

func (l *zaplog) write(level Level, msg string) {
	l.RLock()
	enabled := l.opts.Level.Enabled(level)
	zl := l.zap
	l.RUnlock()

	if !enabled || zl == nil {
		return
	}

	if ce := zl.Check(level.zapLevel(), msg); ce != nil {
		ce.Write()
	}
}

func (l *zaplog) Options() Options {
	// not guard against options Context values
	l.RLock()
	defer l.RUnlock()

	opts := l.opts
	opts.Fields = copyFields(l.opts.Fields)

	return opts
}

// NewLogger builds a new zap backed logger based on options.
func NewLogger(opts ...Option) Logger {
	// Log/Logf and write sit between the caller and zap
	const defaultCallerSkipCount = 2

	options := Options{
		Level:           InfoLevel,
		Fields:          make(map[string]interface{}),
		Out:             os.Stderr,
		CallerSkipCount: defaultCallerSkipCount,
		Encoding:        "console",
		Context:         context.Background(),
	}

	l := &zaplog{opts: options}
	if err := l.Init(opts...); err != nil {
		l.Log(FatalLevel, err)
	}

	return l
}
