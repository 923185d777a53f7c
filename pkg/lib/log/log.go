// Package log 提供统一日志接口
//
// 基于 Go 标准库 log/slog 封装，按组件（component）区分日志来源：
//
//	var logger = log.Logger("core/registrar")
//
//	logger.Info("拓扑已注册", "id", id)
//
// 各组件的日志级别通过环境变量配置，参见 config.go。
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
)

// 日志级别常量（从 slog 导出，方便使用）
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	// outputMu 保护 output/format，SetOutput 可在运行时调用
	outputMu sync.RWMutex
	output   io.Writer = os.Stderr
	format             = FormatText

	// handlers 缓存各组件的 Handler
	handlers sync.Map // map[string]slog.Handler
)

// SetOutput 设置日志输出目标和默认级别
//
// 已创建的 LazyLogger 在下一次日志调用时生效。
func SetOutput(w io.Writer, level slog.Level) {
	outputMu.Lock()
	output = w
	outputMu.Unlock()

	cfg := ConfigFromEnv()
	cfg.setDefaultLevel(level)
	handlers.Range(func(key, _ any) bool {
		handlers.Delete(key)
		return true
	})
}

// Discard 丢弃所有日志输出（主要用于测试）
func Discard() {
	SetOutput(io.Discard, LevelError)
}

// writer 是一个动态查找当前 output 的 io.Writer
type writer struct{}

func (writer) Write(p []byte) (int, error) {
	outputMu.RLock()
	w := output
	outputMu.RUnlock()
	return w.Write(p)
}

// handlerFor 返回组件的 Handler（带缓存）
func handlerFor(component string) slog.Handler {
	if h, ok := handlers.Load(component); ok {
		return h.(slog.Handler)
	}

	cfg := ConfigFromEnv()
	opts := &slog.HandlerOptions{
		Level: cfg.LevelFor(component),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Key = "ts"
			}
			return a
		},
	}

	var h slog.Handler
	if cfg.Format == FormatJSON {
		h = slog.NewJSONHandler(writer{}, opts)
	} else {
		h = slog.NewTextHandler(writer{}, opts)
	}
	h = h.WithAttrs([]slog.Attr{slog.String("component", component)})

	actual, _ := handlers.LoadOrStore(component, h)
	return actual.(slog.Handler)
}

// ============================================================================
//                              LazyLogger
// ============================================================================

// LazyLogger 懒加载 logger
//
// 每次日志调用时才解析 Handler，支持在运行时切换输出目标和级别。
type LazyLogger struct {
	component string
}

// Logger 返回带组件名的 LazyLogger
func Logger(component string) *LazyLogger {
	return &LazyLogger{component: component}
}

func (l *LazyLogger) current() *slog.Logger {
	return slog.New(handlerFor(l.component))
}

// Debug 输出 Debug 级别日志
func (l *LazyLogger) Debug(msg string, args ...any) {
	l.current().Debug(msg, args...)
}

// Info 输出 Info 级别日志
func (l *LazyLogger) Info(msg string, args ...any) {
	l.current().Info(msg, args...)
}

// Warn 输出 Warn 级别日志
func (l *LazyLogger) Warn(msg string, args ...any) {
	l.current().Warn(msg, args...)
}

// Error 输出 Error 级别日志
func (l *LazyLogger) Error(msg string, args ...any) {
	l.current().Error(msg, args...)
}

// ErrorContext 带 context 的 Error 日志
func (l *LazyLogger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.current().ErrorContext(ctx, msg, args...)
}

// Enabled 检查组件是否启用指定级别
func (l *LazyLogger) Enabled(level slog.Level) bool {
	return handlerFor(l.component).Enabled(context.Background(), level)
}

// With 添加额外的属性
func (l *LazyLogger) With(args ...any) *slog.Logger {
	return l.current().With(args...)
}

// TruncateID 安全截取 ID 用于日志显示
//
// 避免在日志中直接使用 id[:8] 导致 slice bounds out of range。
func TruncateID(id string, maxLen int) string {
	if len(id) <= maxLen {
		return id
	}
	return id[:maxLen]
}
