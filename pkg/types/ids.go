// Package types 定义 registrar 的基础类型
//
// 这是整个系统的最底层包，不依赖任何其他内部包。
// 所有类型都是纯值类型，用于在各模块间传递数据。
package types

import "strings"

// ============================================================================
//                              PeerID - 节点标识
// ============================================================================

// PeerID 远端节点标识
//
// 由身份层派生，本包只把它当作不透明字符串处理。
type PeerID string

// EmptyPeerID 空节点 ID
const EmptyPeerID PeerID = ""

// String 返回节点 ID 字符串
func (id PeerID) String() string {
	return string(id)
}

// ShortString 返回前 8 个字符，用于日志
func (id PeerID) ShortString() string {
	if len(id) > 8 {
		return string(id[:8])
	}
	return string(id)
}

// IsEmpty 检查是否为空
func (id PeerID) IsEmpty() bool {
	return id == EmptyPeerID
}

// Validate 校验节点 ID
func (id PeerID) Validate() error {
	if id.IsEmpty() {
		return ErrEmptyPeerID
	}
	if strings.ContainsAny(string(id), " \t\r\n/") {
		return ErrInvalidPeerID
	}
	return nil
}

// ============================================================================
//                              ProtocolID - 协议标识
// ============================================================================

// ProtocolID 协议标识，例如 "/dep2p/sys/ping/1.0.0"
type ProtocolID string

// String 返回协议 ID 字符串
func (p ProtocolID) String() string {
	return string(p)
}

// ============================================================================
//                              RegistrationID - 注册标识
// ============================================================================

// RegistrationID 拓扑注册标识
//
// 由 Registrar.Register 返回，用于之后的 Unregister。
// 对调用方而言是不透明的。
type RegistrationID string

// String 返回注册 ID 字符串
func (id RegistrationID) String() string {
	return string(id)
}

// ShortString 返回前 8 个字符，用于日志
func (id RegistrationID) ShortString() string {
	if len(id) > 8 {
		return string(id[:8])
	}
	return string(id)
}
