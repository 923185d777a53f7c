// Package interfaces 定义 registrar 公共接口
//
// 本文件定义 Connection 和 Stream 接口。
// 传输、多路复用与协议协商不在本模块范围内，这里只声明 registrar
// 及其协作方需要的最小能力。
package interfaces

import (
	"io"
	"time"

	"github.com/dep2p/go-registrar/pkg/types"
)

// Connection 定义已建立的节点连接
//
//go:generate mockgen -destination=mocks/mock_connection.go -package=mocks . Connection
type Connection interface {
	// ID 返回连接的唯一标识
	//
	// 同一节点可能同时存在多条连接，ID 用于区分它们。
	ID() string

	// LocalPeer 返回本地节点 ID
	LocalPeer() types.PeerID

	// RemotePeer 返回远端节点 ID
	RemotePeer() types.PeerID

	// Direction 返回连接方向
	Direction() types.Direction

	// Opened 返回连接建立时间
	Opened() time.Time

	// Close 关闭连接
	Close() error
}

// Stream 定义连接上的一条协议流
type Stream interface {
	io.ReadWriteCloser

	// Protocol 返回协商好的协议 ID
	Protocol() types.ProtocolID

	// Conn 返回流所属的连接
	Conn() Connection

	// Reset 异常关闭流
	Reset() error
}

// StreamHandler 定义流处理函数类型
type StreamHandler func(Stream)
