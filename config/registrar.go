package config

import (
	"errors"
	"time"
)

// RegistrarConfig 协议注册器配置
type RegistrarConfig struct {
	// EmitEvents 是否在事件总线上发布拓扑注册/注销/失败事件
	EmitEvents bool `json:"emit_events"`

	// EnableMetrics 是否导出 Prometheus 指标
	EnableMetrics bool `json:"enable_metrics"`

	// SlowHandlerThreshold 单个拓扑处理断开事件的告警阈值
	//
	// 断开扇出是同步的，一个慢拓扑会拖住连接管理器；
	// 超过该阈值时输出 Warn 日志。0 表示不检测。
	SlowHandlerThreshold Duration `json:"slow_handler_threshold"`
}

// DefaultRegistrarConfig 返回默认协议注册器配置
func DefaultRegistrarConfig() RegistrarConfig {
	return RegistrarConfig{
		EmitEvents:           true,
		EnableMetrics:        true,
		SlowHandlerThreshold: Duration(100 * time.Millisecond),
	}
}

// Validate 验证协议注册器配置
func (c RegistrarConfig) Validate() error {
	if c.SlowHandlerThreshold < 0 {
		return errors.New("registrar: slow_handler_threshold must not be negative")
	}
	return nil
}

// WithSlowHandlerThreshold 设置慢处理告警阈值
func (c RegistrarConfig) WithSlowHandlerThreshold(d time.Duration) RegistrarConfig {
	c.SlowHandlerThreshold = Duration(d)
	return c
}
