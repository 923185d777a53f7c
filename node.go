package registrar

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/fx"

	"github.com/dep2p/go-registrar/config"
	pkgif "github.com/dep2p/go-registrar/pkg/interfaces"
	"github.com/dep2p/go-registrar/pkg/lib/log"
)

var logger = log.Logger("registrar/node")

// Node 协议注册器节点
//
// Node 是一个门面（Facade），聚合事件总线、连接管理器与协议注册器。
//
// 使用示例：
//
//	node, err := registrar.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer node.Close()
//
//	if err := node.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	id, err := node.Registrar().Register(topo)
type Node struct {
	// ────────────────────────────────────────────────────────────────────────
	// 配置和状态
	// ────────────────────────────────────────────────────────────────────────

	// config 节点配置
	config *nodeConfig

	// app Fx 应用
	app *fx.App

	// logOutput 日志文件（可选）
	logOutput io.Closer

	// ────────────────────────────────────────────────────────────────────────
	// 核心组件（由 Fx 注入）
	// ────────────────────────────────────────────────────────────────────────

	eventBus  pkgif.EventBus
	connMgr   pkgif.ConnManager
	registrar pkgif.Registrar

	// ────────────────────────────────────────────────────────────────────────
	// 生命周期状态
	// ────────────────────────────────────────────────────────────────────────

	mu      sync.RWMutex
	state   NodeState
	started bool
	closed  bool
}

// ════════════════════════════════════════════════════════════════════════════
//                              构造函数
// ════════════════════════════════════════════════════════════════════════════

// New 创建新节点
//
// 创建节点但不启动，需要调用 Start() 启动。
func New(opts ...Option) (*Node, error) {
	cfg := newNodeConfig()

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("apply option: %w", err)
		}
	}

	if err := cfg.config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	node := &Node{
		config: cfg,
		state:  StateIdle,
	}

	logOutput, err := setupLogging(cfg.config.Log)
	if err != nil {
		return nil, err
	}
	node.logOutput = logOutput

	node.app, err = buildFxApp(cfg, node)
	if err != nil {
		if logOutput != nil {
			logOutput.Close()
		}
		return nil, fmt.Errorf("build fx app: %w", err)
	}

	return node, nil
}

// setupLogging 按日志配置设置输出目标
//
// 只配置了级别时输出到 stderr；返回打开的日志文件（如有）。
func setupLogging(cfg config.LogConfig) (io.Closer, error) {
	if cfg.File == "" && cfg.Level == "" {
		return nil, nil
	}

	level := log.LevelInfo
	if cfg.Level != "" {
		if l, ok := log.ParseLevel(cfg.Level); ok {
			level = l
		}
	}

	if cfg.File == "" {
		log.SetOutput(os.Stderr, level)
		return nil, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f, level)
	return f, nil
}

// ════════════════════════════════════════════════════════════════════════════
//                              组件访问
// ════════════════════════════════════════════════════════════════════════════

// Registrar 返回协议注册器
func (n *Node) Registrar() pkgif.Registrar {
	return n.registrar
}

// ConnManager 返回连接管理器
//
// 传输层通过它上报连接建立/关闭。
func (n *Node) ConnManager() pkgif.ConnManager {
	return n.connMgr
}

// EventBus 返回事件总线
func (n *Node) EventBus() pkgif.EventBus {
	return n.eventBus
}

// Config 返回节点使用的统一配置副本
func (n *Node) Config() *config.Config {
	return n.config.config.Clone()
}

// State 返回节点状态
func (n *Node) State() NodeState {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.state
}

// IsRunning 节点是否在运行
func (n *Node) IsRunning() bool {
	return n.State() == StateRunning
}

// String 返回节点的简要描述
func (n *Node) String() string {
	var b strings.Builder
	b.WriteString("Node{state=")
	b.WriteString(n.State().String())
	if r := n.registrar; r != nil {
		fmt.Fprintf(&b, ", topologies=%d", r.Len())
	}
	if m := n.connMgr; m != nil {
		fmt.Fprintf(&b, ", conns=%d", m.ConnCount())
	}
	b.WriteString("}")
	return b.String()
}
