// Package eventbus 实现进程内事件总线
//
// 提供类型安全的事件发布/订阅机制：
//   - 多订阅者
//   - 缓冲区配置
//   - 非阻塞发射（慢消费者丢弃并告警）
//   - 并发安全
//
// # 快速开始
//
//	bus := eventbus.NewBus()
//
//	sub, _ := bus.Subscribe(new(types.EvtPeerDisconnected))
//	defer sub.Close()
//
//	go func() {
//	    for evt := range sub.Out() {
//	        e := evt.(*types.EvtPeerDisconnected)
//	        // 处理事件
//	    }
//	}()
//
//	em, _ := bus.Emitter(new(types.EvtPeerDisconnected))
//	defer em.Close()
//	em.Emit(&types.EvtPeerDisconnected{...})
//
// # 在本仓库中的用途
//
//   - connmgr 发布 EvtPeerConnected / EvtPeerDisconnected
//   - registrar 发布 EvtTopologyRegistered / EvtTopologyUnregistered / EvtTopologyFailed
//
// 事件总线是观测通道：registrar 的断开扇出不经过它，
// 而是通过 ConnNotifier 同步投递。
package eventbus
