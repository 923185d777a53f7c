// Package registrar 实现协议注册器
//
// Registrar 是连接子系统与协议模块之间的契约：协议模块以 Topology
// 的形式注册，Registrar 把连接管理器的断开事件扇出给所有已注册拓扑，
// 并代理按节点查找连接。
//
// # 注册
//
//	id, err := reg.Register(topo)
//	...
//	reg.Unregister(id) // true
//	reg.Unregister(id) // false，幂等
//
// Register 会调用 topo.SetRegistrar(reg) 设置反向引用；Unregister 不会
// 清除该引用，拓扑在注销后不得继续使用它。
//
// # 断开扇出
//
// 构造时通过 ConnectionSource.Notify 订阅断开事件，Close 时通过
// StopNotify 解绑。每个断开事件：
//
//   - 在读锁下复制注册表快照，随后无锁逐个调用 Disconnect
//   - 在调用方 goroutine 上同步执行，顺序不作保证
//   - 回调内的 Register / Unregister 不影响本次快照：快照中的拓扑恰好收到
//     一次，新注册的拓扑不会收到本次事件
//   - 单个拓扑 panic 被恢复为 *TopologyError，记录日志、计入指标，其余拓扑
//     照常收到事件
//   - 不做任何过滤，拓扑必须忽略自己不关心的节点
//
// # 默认流处理器
//
// Handle / SetHandle 维护单个默认 StreamHandler，后写覆盖，不保留历史。
package registrar
