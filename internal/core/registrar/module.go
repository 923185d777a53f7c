package registrar

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	pkgif "github.com/dep2p/go-registrar/pkg/interfaces"
)

// ============================================================================
// Fx 模块
// ============================================================================

// Module 返回 Fx 模块
//
// 依赖 pkgif.ConnectionSource 和 *config.Config；EventBus 与
// prometheus.Registerer 可选。
func Module() fx.Option {
	return fx.Module(Name,
		fx.Provide(
			ConfigFromUnified,
			ProvideMetrics,
			ProvideRegistrar,
		),
		fx.Invoke(registerLifecycle),
	)
}

// metricsParams 指标依赖参数
type metricsParams struct {
	fx.In

	Config     Config
	Registerer prometheus.Registerer `optional:"true"`
}

// ProvideMetrics 提供指标收集器
//
// 未启用指标时返回 nil。
func ProvideMetrics(p metricsParams) (*Metrics, error) {
	if !p.Config.EnableMetrics {
		return nil, nil
	}
	return NewMetrics(p.Registerer)
}

// registrarParams 协议注册器依赖参数
type registrarParams struct {
	fx.In

	Config   Config
	Source   pkgif.ConnectionSource
	EventBus pkgif.EventBus `optional:"true"`
	Metrics  *Metrics       `optional:"true"`
}

// Result Fx 模块输出结果
type Result struct {
	fx.Out

	Registrar pkgif.Registrar
}

// ProvideRegistrar 提供协议注册器
func ProvideRegistrar(p registrarParams) (Result, error) {
	r, err := New(p.Source, p.Config,
		WithEventBus(p.EventBus),
		WithMetrics(p.Metrics),
	)
	if err != nil {
		return Result{}, err
	}
	return Result{Registrar: r}, nil
}

// lifecycleInput 生命周期输入参数
type lifecycleInput struct {
	fx.In
	LC        fx.Lifecycle
	Registrar pkgif.Registrar
}

// registerLifecycle 注册生命周期
//
// 停止时从连接事件源解绑。
func registerLifecycle(input lifecycleInput) {
	input.LC.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return input.Registrar.Close()
		},
	})
}

// ============================================================================
// 模块元信息
// ============================================================================

const (
	// Name 模块名称
	Name = "registrar"
	// Description 模块描述
	Description = "协议注册器模块，管理拓扑注册并扇出节点断开事件"
)
