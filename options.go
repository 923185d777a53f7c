package registrar

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/dep2p/go-registrar/config"
)

// Option 用户配置选项函数
type Option func(*nodeConfig) error

// nodeConfig 内部选项结构
type nodeConfig struct {
	// config 统一配置
	config *config.Config

	// registerer Prometheus 指标注册器（可选）
	registerer prometheus.Registerer

	// fxLogger Fx 内部日志（可选，默认丢弃）
	fxLogger *zap.Logger

	// userFxOptions 用户自定义 Fx 选项
	userFxOptions []fx.Option
}

// newNodeConfig 创建默认选项
func newNodeConfig() *nodeConfig {
	return &nodeConfig{
		config: config.NewConfig(),
	}
}

// WithConfig 使用完整的统一配置
func WithConfig(cfg *config.Config) Option {
	return func(c *nodeConfig) error {
		if cfg == nil {
			return config.ErrNilConfig
		}
		c.config = cfg.Clone()
		return nil
	}
}

// WithConfigFile 从 JSON 文件加载统一配置
func WithConfigFile(path string) Option {
	return func(c *nodeConfig) error {
		cfg, err := config.LoadFile(path)
		if err != nil {
			return fmt.Errorf("load config %s: %w", path, err)
		}
		c.config = cfg
		return nil
	}
}

// WithLogFile 设置日志文件路径
func WithLogFile(path string) Option {
	return func(c *nodeConfig) error {
		c.config.Log.File = path
		return nil
	}
}

// WithMetricsRegisterer 设置 Prometheus 指标注册器
//
// 未设置时指标仍然收集，但不注册到任何 Registry。
func WithMetricsRegisterer(reg prometheus.Registerer) Option {
	return func(c *nodeConfig) error {
		if reg == nil {
			return errors.New("metrics registerer is nil")
		}
		c.registerer = reg
		return nil
	}
}

// WithFxLogger 输出 Fx 内部日志（默认丢弃）
func WithFxLogger(logger *zap.Logger) Option {
	return func(c *nodeConfig) error {
		c.fxLogger = logger
		return nil
	}
}

// WithFxOptions 注入额外的 Fx 选项
//
// 可用于提供自定义 ConnectionSource 或在启动时注册拓扑：
//
//	registrar.WithFxOptions(fx.Invoke(func(r pkgif.Registrar) { ... }))
func WithFxOptions(opts ...fx.Option) Option {
	return func(c *nodeConfig) error {
		c.userFxOptions = append(c.userFxOptions, opts...)
		return nil
	}
}
