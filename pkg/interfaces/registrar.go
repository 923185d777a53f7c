// Package interfaces 定义 registrar 公共接口
//
// 本文件定义 Registrar 与 Topology 接口，对应 internal/core/registrar/ 实现。
package interfaces

import (
	"time"

	"github.com/dep2p/go-registrar/pkg/types"
)

// Topology 定义协议模块对节点连接事件的订阅
//
// 协议模块通过实现该接口向 Registrar 注册。连接建立时的通知以及
// "关心哪些节点" 的过滤逻辑由协议模块自己负责（参见 internal/core/topology）。
//
//go:generate mockgen -destination=mocks/mock_topology.go -package=mocks . Topology
type Topology interface {
	// Disconnect 节点断开时调用
	//
	// Registrar 不做过滤，会把每个断开事件投递给所有拓扑；
	// 拓扑对不关心的节点必须直接忽略，不能 panic。
	Disconnect(peer types.PeerID, err error)

	// SetRegistrar 设置所属 Registrar 的反向引用
	//
	// 由 Register 调用。注销后拓扑不应继续使用该引用。
	SetRegistrar(r Registrar)
}

// Registration 一条注册记录的快照
type Registration struct {
	// ID 注册标识
	ID types.RegistrationID

	// Topology 已注册的拓扑
	Topology Topology

	// RegisteredAt 注册时间
	RegisteredAt time.Time
}

// Registrar 定义协议注册器接口
//
// Registrar 持有当前所有拓扑注册，把连接管理器的断开事件扇出给它们，
// 并代理按节点查找连接。
type Registrar interface {
	// Register 注册拓扑，返回注册标识
	//
	// topology 为 nil 时返回 ErrInvalidParameter，不做任何修改。
	Register(topology Topology) (types.RegistrationID, error)

	// Unregister 注销拓扑
	//
	// 返回是否确实删除了注册；未知或已注销的 ID 返回 false。
	Unregister(id types.RegistrationID) bool

	// GetConnection 获取与指定节点的连接
	GetConnection(peer types.PeerID) (Connection, bool)

	// Handle 返回当前默认流处理器，未设置时为 nil
	Handle() StreamHandler

	// SetHandle 替换默认流处理器
	SetHandle(handler StreamHandler)

	// Topologies 返回当前注册的快照
	Topologies() []Registration

	// Len 返回当前注册数量
	Len() int

	// Close 从连接事件源解绑
	Close() error
}
