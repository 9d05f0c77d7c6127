package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the application-wide leveled logger. Every method takes the
// request context first so call sites can carry request-scoped fields later
// without changing signatures.
type Logger interface {
	Debug(ctx context.Context, arg ...any)
	Debugf(ctx context.Context, template string, arg ...any)
	Info(ctx context.Context, arg ...any)
	Infof(ctx context.Context, template string, arg ...any)
	Warn(ctx context.Context, arg ...any)
	Warnf(ctx context.Context, template string, arg ...any)
	Error(ctx context.Context, arg ...any)
	Errorf(ctx context.Context, template string, arg ...any)
	DPanic(ctx context.Context, arg ...any)
	DPanicf(ctx context.Context, template string, arg ...any)
	Panic(ctx context.Context, arg ...any)
	Panicf(ctx context.Context, template string, arg ...any)
	Fatal(ctx context.Context, arg ...any)
	Fatalf(ctx context.Context, template string, arg ...any)
}

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // development or production
	Encoding     string // console or json
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

var _ Logger = (*zapLogger)(nil)

// Init builds the logger from config. Invalid values fall back to an
// info-level production console logger.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if l, err := zapcore.ParseLevel(cfg.Level); err == nil {
		level = l
	}

	var encoderCfg zapcore.EncoderConfig
	if cfg.Mode == "development" {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	} else {
		encoderCfg = zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	if cfg.ColorEnabled && cfg.Encoding != "json" {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == "json" {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)

	opts := []zap.Option{zap.AddCallerSkip(1)}
	if cfg.Mode == "development" {
		opts = append(opts, zap.Development(), zap.AddCaller())
	}

	return &zapLogger{sugar: zap.New(core, opts...).Sugar()}
}

// splitMsg treats a leading string followed by key-value pairs as a
// structured call; anything else logs positionally.
func splitMsg(arg []any) (string, []any, bool) {
	if len(arg) < 3 || len(arg)%2 == 0 {
		return "", nil, false
	}
	msg, ok := arg[0].(string)
	if !ok {
		return "", nil, false
	}
	return msg, arg[1:], true
}

// Noop returns a logger that discards everything. Meant for tests.
func Noop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func (l *zapLogger) Debug(_ context.Context, arg ...any) {
	if msg, kv, ok := splitMsg(arg); ok {
		l.sugar.Debugw(msg, kv...)
		return
	}
	l.sugar.Debug(arg...)
}

func (l *zapLogger) Info(_ context.Context, arg ...any) {
	if msg, kv, ok := splitMsg(arg); ok {
		l.sugar.Infow(msg, kv...)
		return
	}
	l.sugar.Info(arg...)
}

func (l *zapLogger) Warn(_ context.Context, arg ...any) {
	if msg, kv, ok := splitMsg(arg); ok {
		l.sugar.Warnw(msg, kv...)
		return
	}
	l.sugar.Warn(arg...)
}

func (l *zapLogger) Error(_ context.Context, arg ...any) {
	if msg, kv, ok := splitMsg(arg); ok {
		l.sugar.Errorw(msg, kv...)
		return
	}
	l.sugar.Error(arg...)
}

func (l *zapLogger) DPanic(_ context.Context, arg ...any) { l.sugar.DPanic(arg...) }
func (l *zapLogger) Panic(_ context.Context, arg ...any)  { l.sugar.Panic(arg...) }
func (l *zapLogger) Fatal(_ context.Context, arg ...any)  { l.sugar.Fatal(arg...) }

func (l *zapLogger) Debugf(_ context.Context, template string, arg ...any) {
	l.sugar.Debugf(template, arg...)
}

func (l *zapLogger) Infof(_ context.Context, template string, arg ...any) {
	l.sugar.Infof(template, arg...)
}

func (l *zapLogger) Warnf(_ context.Context, template string, arg ...any) {
	l.sugar.Warnf(template, arg...)
}

func (l *zapLogger) Errorf(_ context.Context, template string, arg ...any) {
	l.sugar.Errorf(template, arg...)
}

func (l *zapLogger) DPanicf(_ context.Context, template string, arg ...any) {
	l.sugar.DPanicf(template, arg...)
}

func (l *zapLogger) Panicf(_ context.Context, template string, arg ...any) {
	l.sugar.Panicf(template, arg...)
}

func (l *zapLogger) Fatalf(_ context.Context, template string, arg ...any) {
	l.sugar.Fatalf(template, arg...)
}
