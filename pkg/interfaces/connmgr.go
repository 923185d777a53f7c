// Package interfaces 定义 registrar 公共接口
//
// 本文件定义连接事件源接口，对应 internal/core/connmgr/ 实现。
package interfaces

import "github.com/dep2p/go-registrar/pkg/types"

// ConnNotifier 连接事件通知接口
//
// 事件在连接管理器的调用 goroutine 上同步投递，
// 实现方必须尽快返回。
type ConnNotifier interface {
	// Connected 与某节点建立第一条连接时调用
	Connected(conn Connection)

	// Disconnected 与某节点的最后一条连接关闭时调用
	//
	// err 为导致断开的错误，优雅断开时为 nil。
	Disconnected(conn Connection, err error)
}

// ConnectionSource 定义 registrar 依赖的连接事件源
//
// Registrar 只使用这一最小接口：订阅/退订断开事件，按节点查找连接。
//
//go:generate mockgen -destination=mocks/mock_connmgr.go -package=mocks . ConnectionSource
type ConnectionSource interface {
	// Notify 注册连接事件通知
	Notify(notifier ConnNotifier)

	// StopNotify 取消连接事件通知
	StopNotify(notifier ConnNotifier)

	// Get 返回与指定节点的活跃连接
	//
	// 不存在时返回 (nil, false)，这不是错误。
	Get(peer types.PeerID) (Connection, bool)
}

// ConnManager 定义连接管理器接口
//
// 在 ConnectionSource 基础上增加连接事件的输入端，
// 由传输层（不在本模块范围内）在连接建立/关闭时调用。
type ConnManager interface {
	ConnectionSource

	// Connected 记录一条新连接
	Connected(conn Connection)

	// Disconnected 移除一条连接，err 为关闭原因（可为 nil）
	Disconnected(conn Connection, err error)

	// Peers 返回所有已连接的节点
	Peers() []types.PeerID

	// ConnCount 返回当前连接数
	ConnCount() int

	// Close 关闭连接管理器
	Close() error
}
