// Package config 提供统一的配置管理
//
// 主 Config 结构体嵌入所有子配置，每个子配置在独立文件中定义，
// 支持从 JSON 加载和保存。
//
// 使用示例：
//
//	cfg := config.NewConfig()
//	cfg.Registrar.EnableMetrics = false
//
//	// 从 JSON 加载
//	cfg, err := config.FromJSON(data)
package config

import "errors"

// ErrNilConfig 配置为空
var ErrNilConfig = errors.New("config is nil")

// Config 是完整配置结构
//
// 配置按照功能模块组织：
//   - Registrar: 协议注册器
//   - ConnMgr: 连接管理
//   - Log: 日志输出
type Config struct {
	// Registrar 协议注册器配置
	Registrar RegistrarConfig `json:"registrar"`

	// ConnMgr 连接管理配置
	ConnMgr ConnManagerConfig `json:"conn_mgr"`

	// Log 日志配置
	Log LogConfig `json:"log"`
}

// NewConfig 创建默认配置
func NewConfig() *Config {
	return &Config{
		Registrar: DefaultRegistrarConfig(),
		ConnMgr:   DefaultConnManagerConfig(),
		Log:       DefaultLogConfig(),
	}
}

// Validate 验证配置的有效性
func (c *Config) Validate() error {
	if c == nil {
		return ErrNilConfig
	}
	if err := c.Registrar.Validate(); err != nil {
		return err
	}
	if err := c.ConnMgr.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}

// Clone 返回配置的副本
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
