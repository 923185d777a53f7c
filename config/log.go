package config

import (
	"fmt"
	"strings"
)

// LogConfig 日志配置
//
// 组件级别由 DEP2P_LOG_LEVEL 环境变量控制，这里只配置输出目标和默认级别。
type LogConfig struct {
	// File 日志文件路径，为空时输出到 stderr
	File string `json:"file,omitempty"`

	// Level 默认日志级别：debug/info/warn/error，为空时使用 info
	Level string `json:"level,omitempty"`
}

// DefaultLogConfig 返回默认日志配置
func DefaultLogConfig() LogConfig {
	return LogConfig{}
}

// Validate 验证日志配置
func (c LogConfig) Validate() error {
	switch strings.ToLower(c.Level) {
	case "", "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("log: invalid level %q", c.Level)
	}
}
