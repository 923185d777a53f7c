// Package types 定义 registrar 的基础类型
//
// 本文件定义事件相关类型。
package types

import (
	"time"
)

// ============================================================================
//                              Event - 事件接口
// ============================================================================

// Event 基础事件接口
type Event interface {
	// Type 返回事件类型
	Type() string

	// Timestamp 返回事件时间戳
	Timestamp() time.Time
}

// BaseEvent 基础事件实现
type BaseEvent struct {
	EventType string
	Time      time.Time
}

// Type 返回事件类型
func (e BaseEvent) Type() string {
	return e.EventType
}

// Timestamp 返回事件时间戳
func (e BaseEvent) Timestamp() time.Time {
	return e.Time
}

// NewBaseEvent 创建基础事件
func NewBaseEvent(eventType string) BaseEvent {
	return BaseEvent{
		EventType: eventType,
		Time:      time.Now(),
	}
}

// 事件类型名
const (
	EventTypePeerConnected        = "peer:connect"
	EventTypePeerDisconnected     = "peer:disconnect"
	EventTypeTopologyRegistered   = "topology:registered"
	EventTypeTopologyUnregistered = "topology:unregistered"
	EventTypeTopologyFailed       = "topology:failed"
)

// ============================================================================
//                              连接事件
// ============================================================================

// DisconnectReason 断开原因类型
type DisconnectReason int

const (
	// DisconnectReasonUnknown 未知原因
	DisconnectReasonUnknown DisconnectReason = iota
	// DisconnectReasonGraceful 优雅断开（没有错误）
	DisconnectReasonGraceful
	// DisconnectReasonError 连接错误导致断开
	DisconnectReasonError
)

// String 返回断开原因的字符串表示
func (r DisconnectReason) String() string {
	switch r {
	case DisconnectReasonGraceful:
		return "graceful"
	case DisconnectReasonError:
		return "error"
	default:
		return "unknown"
	}
}

// ReasonFromError 根据断开错误推导原因
func ReasonFromError(err error) DisconnectReason {
	if err == nil {
		return DisconnectReasonGraceful
	}
	return DisconnectReasonError
}

// EvtPeerConnected 节点连接事件
//
// 只在与该节点建立第一条连接时发出。
type EvtPeerConnected struct {
	BaseEvent
	PeerID    PeerID
	Direction Direction
}

// EvtPeerDisconnected 节点断开事件
//
// 只在与该节点的最后一条连接关闭时发出。
// Error 仅在 Reason 为 DisconnectReasonError 时非空。
type EvtPeerDisconnected struct {
	BaseEvent
	PeerID PeerID
	Reason DisconnectReason
	Error  error
}

// ============================================================================
//                              拓扑事件
// ============================================================================

// EvtTopologyRegistered 拓扑注册事件
type EvtTopologyRegistered struct {
	BaseEvent
	ID RegistrationID
}

// EvtTopologyUnregistered 拓扑注销事件
type EvtTopologyUnregistered struct {
	BaseEvent
	ID RegistrationID
}

// EvtTopologyFailed 拓扑处理断开事件失败
//
// 单个拓扑失败不会阻止其余拓扑收到同一事件。
type EvtTopologyFailed struct {
	BaseEvent
	ID     RegistrationID
	PeerID PeerID
	Error  error
}
