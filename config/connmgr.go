package config

// ConnManagerConfig 连接管理配置
type ConnManagerConfig struct {
	// EmitEvents 是否在事件总线上发布节点连接/断开事件
	EmitEvents bool `json:"emit_events"`
}

// DefaultConnManagerConfig 返回默认连接管理配置
func DefaultConnManagerConfig() ConnManagerConfig {
	return ConnManagerConfig{
		EmitEvents: true,
	}
}

// Validate 验证连接管理配置
func (c ConnManagerConfig) Validate() error {
	return nil
}
