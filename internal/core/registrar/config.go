package registrar

import (
	"fmt"
	"time"

	"github.com/dep2p/go-registrar/config"
)

// Config 协议注册器配置
type Config struct {
	// EmitEvents 是否发布拓扑注册/注销/失败事件（需要 EventBus）
	EmitEvents bool

	// EnableMetrics 是否导出 Prometheus 指标
	EnableMetrics bool

	// SlowHandlerThreshold 单个拓扑处理断开事件的告警阈值，0 表示不检测
	SlowHandlerThreshold time.Duration
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		EmitEvents:           true,
		EnableMetrics:        true,
		SlowHandlerThreshold: 100 * time.Millisecond,
	}
}

// Validate 验证配置
func (c Config) Validate() error {
	if c.SlowHandlerThreshold < 0 {
		return fmt.Errorf("%w: slow handler threshold %v is negative", ErrInvalidConfig, c.SlowHandlerThreshold)
	}
	return nil
}

// ConfigFromUnified 从统一配置创建协议注册器配置
func ConfigFromUnified(cfg *config.Config) Config {
	if cfg == nil {
		return DefaultConfig()
	}
	return Config{
		EmitEvents:           cfg.Registrar.EmitEvents,
		EnableMetrics:        cfg.Registrar.EnableMetrics,
		SlowHandlerThreshold: cfg.Registrar.SlowHandlerThreshold.Duration(),
	}
}
