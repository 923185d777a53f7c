package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseConfig 测试级别配置解析
func TestParseConfig(t *testing.T) {
	cfg := ParseConfig("core/registrar=debug, core/connmgr=warn,error", "json")

	assert.Equal(t, slog.LevelError, cfg.DefaultLevel)
	assert.Equal(t, slog.LevelDebug, cfg.LevelFor("core/registrar"))
	assert.Equal(t, slog.LevelWarn, cfg.LevelFor("core/connmgr"))
	assert.Equal(t, slog.LevelError, cfg.LevelFor("other"))
	assert.Equal(t, FormatJSON, cfg.Format)

	t.Log("✅ 级别配置解析正确")
}

// TestParseConfig_Invalid 测试非法级别被忽略
func TestParseConfig_Invalid(t *testing.T) {
	cfg := ParseConfig("core/registrar=verbose,nonsense", "")

	assert.Equal(t, slog.LevelInfo, cfg.DefaultLevel)
	assert.Empty(t, cfg.ComponentLevels)
	assert.Equal(t, FormatText, cfg.Format)

	t.Log("✅ 非法级别被忽略")
}

// TestParseLevel 测试级别名称解析
func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"trace", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLevel(tt.name)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

// TestLazyLogger_Output 测试组件日志输出
func TestLazyLogger_Output(t *testing.T) {
	t.Setenv(EnvLogLevel, "test/component=debug,warn")
	ResetConfig()
	defer ResetConfig()

	var buf bytes.Buffer
	SetOutput(&buf, LevelWarn)
	defer Discard()

	logger := Logger("test/component")
	logger.Debug("调试信息", "key", "value")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.True(t, strings.Contains(out, "component=test/component"))
	assert.True(t, strings.Contains(out, "key=value"))
	assert.True(t, logger.Enabled(LevelDebug))

	buf.Reset()
	Logger("test/other").Info("不应输出")
	assert.Empty(t, buf.String())

	t.Log("✅ 组件日志输出正确")
}

// TestTruncateID 测试 ID 截取
func TestTruncateID(t *testing.T) {
	assert.Equal(t, "12345678", TruncateID("1234567890", 8))
	assert.Equal(t, "abc", TruncateID("abc", 8))
	assert.Equal(t, "", TruncateID("", 8))
}
