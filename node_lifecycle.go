package registrar

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/multierr"

	"github.com/dep2p/go-registrar/pkg/lib/log"
)

// ════════════════════════════════════════════════════════════════════════════
//                              生命周期常量
// ════════════════════════════════════════════════════════════════════════════

const (
	// initializeTimeout 启动超时（Fx App Start）
	initializeTimeout = 30 * time.Second

	// shutdownTimeout Close 时的停止超时
	shutdownTimeout = 10 * time.Second
)

// ════════════════════════════════════════════════════════════════════════════
//                              生命周期管理
// ════════════════════════════════════════════════════════════════════════════

// Start 启动节点
//
// 启动 Fx 应用，调用所有模块的 OnStart。
func (n *Node) Start(ctx context.Context) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed || n.state == StateStopped {
		return ErrNodeClosed
	}
	if n.started {
		return ErrAlreadyStarted
	}

	n.state = StateStarting
	logger.Info("正在启动节点")

	initCtx, cancel := context.WithTimeout(ctx, initializeTimeout)
	defer cancel()

	if err := n.app.Start(initCtx); err != nil {
		n.state = StateIdle
		logger.Error("节点启动失败", "error", err)
		return fmt.Errorf("initialize failed: %w", err)
	}

	n.started = true
	n.state = StateRunning
	logger.Info("节点已启动")
	return nil
}

// Stop 停止节点
//
// 按反向顺序调用 OnStop：协议注册器从连接管理器解绑，随后连接管理器关闭。
// 停止后的节点不能重新启动。
func (n *Node) Stop(ctx context.Context) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return ErrNodeClosed
	}
	if !n.started {
		return ErrNotStarted
	}

	return n.stopLocked(ctx)
}

func (n *Node) stopLocked(ctx context.Context) error {
	n.state = StateStopping
	logger.Info("正在停止节点")

	err := n.app.Stop(ctx)

	// 即使停止出错，也标记为已停止
	n.state = StateStopped
	n.started = false

	if err != nil {
		logger.Error("停止节点失败", "error", err)
		return fmt.Errorf("stop fx app: %w", err)
	}
	logger.Info("节点已停止")
	return nil
}

// Close 关闭节点并释放所有资源
//
// 运行中的节点先停止；随后关闭日志文件。重复调用返回 nil。
func (n *Node) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return nil
	}

	var errs error
	if n.started {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		errs = multierr.Append(errs, n.stopLocked(ctx))
		cancel()
	}

	if n.logOutput != nil {
		log.SetOutput(os.Stderr, log.ConfigFromEnv().LevelFor(""))
		errs = multierr.Append(errs, n.logOutput.Close())
		n.logOutput = nil
	}

	n.closed = true
	n.state = StateStopped
	return errs
}
