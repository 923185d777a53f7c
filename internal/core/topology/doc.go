// Package topology 提供可复用的拓扑实现
//
// 协议模块可以直接嵌入 *Topology 并注册到 Registrar：
//
//	topo, _ := topology.New(topology.Config{
//	    Min: 4,
//	    OnDisconnect: func(p types.PeerID, err error) { ... },
//	})
//	id, err := reg.Register(topo)
//
// 连接建立时由协议模块自己调用 Connect 决定是否跟踪该节点；Registrar
// 扇出的断开事件中，未被跟踪的节点直接忽略。
package topology
