package connmgr

import (
	"context"

	"go.uber.org/fx"

	pkgif "github.com/dep2p/go-registrar/pkg/interfaces"
)

// ============================================================================
// Fx 模块
// ============================================================================

// Module 返回 Fx 模块
func Module() fx.Option {
	return fx.Module(Name,
		fx.Provide(
			ConfigFromUnified,
			ProvideManager,
		),
		fx.Invoke(registerLifecycle),
	)
}

// managerParams 连接管理器依赖参数
type managerParams struct {
	fx.In

	Config   Config
	EventBus pkgif.EventBus `optional:"true"`
}

// managerResult 连接管理器输出
//
// 同一个实例同时以 ConnManager 和 ConnectionSource 两种身份提供，
// registrar 只依赖后者。
type managerResult struct {
	fx.Out

	Manager pkgif.ConnManager
	Source  pkgif.ConnectionSource
}

// ProvideManager 提供连接管理器
func ProvideManager(p managerParams) (managerResult, error) {
	mgr, err := New(p.Config, p.EventBus)
	if err != nil {
		return managerResult{}, err
	}
	return managerResult{
		Manager: mgr,
		Source:  mgr,
	}, nil
}

// lifecycleInput 生命周期输入参数
type lifecycleInput struct {
	fx.In
	LC      fx.Lifecycle
	Manager pkgif.ConnManager
}

// registerLifecycle 注册生命周期
func registerLifecycle(input lifecycleInput) {
	input.LC.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return input.Manager.Close()
		},
	})
}

// ============================================================================
// 模块元信息
// ============================================================================

const (
	// Name 模块名称
	Name = "connmgr"
	// Description 模块描述
	Description = "连接管理器模块，跟踪节点连接并分发连接/断开通知"
)
