// Package registrar 提供协议注册器节点
//
// 协议注册器是 P2P 网络栈中连接子系统与协议模块之间的契约：协议模块
// 以拓扑（Topology）的形式注册，对节点连接事件表达兴趣；注册器把连接
// 管理器的断开事件扇出给所有已注册拓扑，并代理按节点查找连接。
//
// # 快速开始
//
//	node, err := registrar.New(
//	    registrar.WithConfigFile("registrar.json"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer node.Close()
//
//	if err := node.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	topo, _ := topology.New(topology.Config{OnDisconnect: onLost})
//	id, err := node.Registrar().Register(topo)
//	...
//	node.Registrar().Unregister(id)
//
// # 组件
//
//   - EventBus: 类型安全的进程内事件总线
//   - ConnManager: 连接管理器，连接事件源
//   - Registrar: 协议注册器
//
// 组件通过 go.uber.org/fx 组装，用户可以通过 WithFxOptions 注入额外模块。
//
// # 日志
//
// 组件日志级别通过环境变量 DEP2P_LOG_LEVEL 配置，例如
// "core/registrar=debug,info"；输出格式通过 DEP2P_LOG_FORMAT 配置。
package registrar
