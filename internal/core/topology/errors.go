package topology

import "errors"

// 拓扑错误定义
var (
	// ErrInvalidConfig 配置无效
	ErrInvalidConfig = errors.New("topology: invalid config")

	// ErrNotRegistered 拓扑尚未注册到 Registrar
	ErrNotRegistered = errors.New("topology: not registered")

	// ErrNoConnection 与该节点没有连接
	ErrNoConnection = errors.New("topology: no connection to peer")
)
