package connmgr

import "github.com/dep2p/go-registrar/config"

// Config 连接管理器配置
type Config struct {
	// EmitEvents 是否在事件总线上发布节点连接/断开事件
	EmitEvents bool
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		EmitEvents: true,
	}
}

// Validate 验证配置
func (c Config) Validate() error {
	return nil
}

// ConfigFromUnified 从统一配置创建连接管理配置
func ConfigFromUnified(cfg *config.Config) Config {
	if cfg == nil {
		return DefaultConfig()
	}
	return Config{
		EmitEvents: cfg.ConnMgr.EmitEvents,
	}
}
