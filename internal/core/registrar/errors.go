package registrar

import (
	"errors"
	"fmt"

	"github.com/dep2p/go-registrar/pkg/types"
)

// 协议注册器错误定义
var (
	// ErrInvalidParameter 参数无效（例如 nil 拓扑）
	ErrInvalidParameter = errors.New("registrar: invalid parameter")

	// ErrClosed 注册器已关闭
	ErrClosed = errors.New("registrar: closed")

	// ErrNilSource 未提供连接事件源
	ErrNilSource = errors.New("registrar: connection source is nil")

	// ErrInvalidConfig 配置无效
	ErrInvalidConfig = errors.New("registrar: invalid config")

	// ErrTopologyPanic 拓扑处理断开事件时 panic
	ErrTopologyPanic = errors.New("registrar: topology panicked")
)

// TopologyError 单个拓扑处理断开事件失败
//
// 区别于注册器自身的错误：它只说明某个拓扑没能处理某个事件，
// 其余拓扑仍然收到了该事件。
type TopologyError struct {
	// ID 出错拓扑的注册标识
	ID types.RegistrationID

	// Peer 正在处理的断开节点
	Peer types.PeerID

	// Cause 失败原因
	Cause error
}

// Error 实现 error 接口
func (e *TopologyError) Error() string {
	return fmt.Sprintf("registrar: topology %s failed to handle disconnect of %s: %v",
		e.ID.ShortString(), e.Peer.ShortString(), e.Cause)
}

// Unwrap 返回底层错误
func (e *TopologyError) Unwrap() error {
	return e.Cause
}

// panicError 把 recover 得到的值转换为错误
func panicError(r interface{}) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("%w: %w", ErrTopologyPanic, err)
	}
	return fmt.Errorf("%w: %v", ErrTopologyPanic, r)
}
