// Package connmgr 实现连接管理器
//
// 连接管理器是 registrar 的连接事件源：传输层在连接建立/关闭时调用
// Connected / Disconnected，管理器维护每个节点的活跃连接，并在节点
// 状态发生变化时通知订阅者。
//
// # 通知语义
//
//   - 与某节点的第一条连接建立时通知 Connected
//   - 与某节点的最后一条连接关闭时通知 Disconnected
//   - 同一节点的多条连接之间的增减不产生通知
//
// 通知在调用 Connected / Disconnected 的 goroutine 上同步投递，
// 投递的是调用开始时订阅者列表的快照。订阅者在回调内调用
// Notify / StopNotify 不会影响本次投递。
//
// # 事件总线
//
// 提供 EventBus 时，同时发布 types.EvtPeerConnected 和
// types.EvtPeerDisconnected 事件（可通过配置关闭）。
//
// # 快速开始
//
//	mgr, err := connmgr.New(connmgr.DefaultConfig(), nil)
//	if err != nil {
//	    return err
//	}
//	defer mgr.Close()
//
//	mgr.Notify(notifier)
//	mgr.Connected(conn)
//	mgr.Disconnected(conn, nil)
package connmgr
