package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// HertzSlogAdapter implements hlog.FullLogger over slog so that framework
// internals and application logs share one output.
type HertzSlogAdapter struct {
	logger *slog.Logger
}

func NewHertzSlogAdapter(logger *slog.Logger) *HertzSlogAdapter {
	return &HertzSlogAdapter{logger: logger}
}

// slogLevel maps hlog levels onto slog's four. Trace folds into debug,
// notice into info, fatal into error; the adapter never exits the process.
func slogLevel(level hlog.Level) slog.Level {
	switch level {
	case hlog.LevelTrace, hlog.LevelDebug:
		return slog.LevelDebug
	case hlog.LevelInfo, hlog.LevelNotice:
		return slog.LevelInfo
	case hlog.LevelWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

func (a *HertzSlogAdapter) log(ctx context.Context, level hlog.Level, msg string) {
	a.logger.Log(ctx, slogLevel(level), msg)
}

func (a *HertzSlogAdapter) Trace(v ...interface{}) {
	a.log(context.Background(), hlog.LevelTrace, fmt.Sprint(v...))
}

func (a *HertzSlogAdapter) Debug(v ...interface{}) {
	a.log(context.Background(), hlog.LevelDebug, fmt.Sprint(v...))
}

func (a *HertzSlogAdapter) Info(v ...interface{}) {
	a.log(context.Background(), hlog.LevelInfo, fmt.Sprint(v...))
}

func (a *HertzSlogAdapter) Notice(v ...interface{}) {
	a.log(context.Background(), hlog.LevelNotice, fmt.Sprint(v...))
}

func (a *HertzSlogAdapter) Warn(v ...interface{}) {
	a.log(context.Background(), hlog.LevelWarn, fmt.Sprint(v...))
}

func (a *HertzSlogAdapter) Error(v ...interface{}) {
	a.log(context.Background(), hlog.LevelError, fmt.Sprint(v...))
}

func (a *HertzSlogAdapter) Fatal(v ...interface{}) {
	a.log(context.Background(), hlog.LevelFatal, fmt.Sprint(v...))
}

func (a *HertzSlogAdapter) Tracef(format string, v ...interface{}) {
	a.log(context.Background(), hlog.LevelTrace, fmt.Sprintf(format, v...))
}

func (a *HertzSlogAdapter) Debugf(format string, v ...interface{}) {
	a.log(context.Background(), hlog.LevelDebug, fmt.Sprintf(format, v...))
}

func (a *HertzSlogAdapter) Infof(format string, v ...interface{}) {
	a.log(context.Background(), hlog.LevelInfo, fmt.Sprintf(format, v...))
}

func (a *HertzSlogAdapter) Noticef(format string, v ...interface{}) {
	a.log(context.Background(), hlog.LevelNotice, fmt.Sprintf(format, v...))
}

func (a *HertzSlogAdapter) Warnf(format string, v ...interface{}) {
	a.log(context.Background(), hlog.LevelWarn, fmt.Sprintf(format, v...))
}

func (a *HertzSlogAdapter) Errorf(format string, v ...interface{}) {
	a.log(context.Background(), hlog.LevelError, fmt.Sprintf(format, v...))
}

func (a *HertzSlogAdapter) Fatalf(format string, v ...interface{}) {
	a.log(context.Background(), hlog.LevelFatal, fmt.Sprintf(format, v...))
}

func (a *HertzSlogAdapter) CtxTracef(ctx context.Context, format string, v ...interface{}) {
	a.log(ctx, hlog.LevelTrace, fmt.Sprintf(format, v...))
}

func (a *HertzSlogAdapter) CtxDebugf(ctx context.Context, format string, v ...interface{}) {
	a.log(ctx, hlog.LevelDebug, fmt.Sprintf(format, v...))
}

func (a *HertzSlogAdapter) CtxInfof(ctx context.Context, format string, v ...interface{}) {
	a.log(ctx, hlog.LevelInfo, fmt.Sprintf(format, v...))
}

func (a *HertzSlogAdapter) CtxNoticef(ctx context.Context, format string, v ...interface{}) {
	a.log(ctx, hlog.LevelNotice, fmt.Sprintf(format, v...))
}

func (a *HertzSlogAdapter) CtxWarnf(ctx context.Context, format string, v ...interface{}) {
	a.log(ctx, hlog.LevelWarn, fmt.Sprintf(format, v...))
}

func (a *HertzSlogAdapter) CtxErrorf(ctx context.Context, format string, v ...interface{}) {
	a.log(ctx, hlog.LevelError, fmt.Sprintf(format, v...))
}

func (a *HertzSlogAdapter) CtxFatalf(ctx context.Context, format string, v ...interface{}) {
	a.log(ctx, hlog.LevelFatal, fmt.Sprintf(format, v...))
}

// SetLevel is a no-op; the slog level is fixed at initialization.
func (a *HertzSlogAdapter) SetLevel(level hlog.Level) {}

// SetOutput is a no-op; the slog output is fixed at initialization.
func (a *HertzSlogAdapter) SetOutput(writer io.Writer) {}
