package connmgr

import "errors"

// 连接管理器错误定义
var (
	// ErrManagerClosed 管理器已关闭
	ErrManagerClosed = errors.New("connmgr: manager closed")
)
