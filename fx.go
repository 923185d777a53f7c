package registrar

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/dep2p/go-registrar/internal/core/connmgr"
	"github.com/dep2p/go-registrar/internal/core/eventbus"
	coreregistrar "github.com/dep2p/go-registrar/internal/core/registrar"
	pkgif "github.com/dep2p/go-registrar/pkg/interfaces"
)

// buildFxApp 构建 Fx 应用
//
// 加载顺序（按依赖）：EventBus → ConnManager → Registrar → 用户选项。
// 停止时按反向顺序：Registrar 先从连接管理器解绑，随后连接管理器关闭。
func buildFxApp(cfg *nodeConfig, node *Node) (*fx.App, error) {
	if err := cfg.config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	modules := []fx.Option{
		fx.Supply(cfg.config),

		eventbus.Module(),
		connmgr.Module(),
		coreregistrar.Module(),
	}

	if cfg.registerer != nil {
		reg := cfg.registerer
		modules = append(modules, fx.Provide(func() prometheus.Registerer { return reg }))
	}

	if len(cfg.userFxOptions) > 0 {
		modules = append(modules, cfg.userFxOptions...)
	}

	modules = append(modules, fx.Invoke(injectNodeComponents(node)))

	fxLogger := cfg.fxLogger
	if fxLogger == nil {
		fxLogger = zap.NewNop()
	}
	modules = append(modules,
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: fxLogger}
		}),
	)

	app := fx.New(modules...)
	if err := app.Err(); err != nil {
		return nil, err
	}
	return app, nil
}

// nodeInjectParams Node 组件注入参数
type nodeInjectParams struct {
	fx.In

	EventBus    pkgif.EventBus
	ConnManager pkgif.ConnManager
	Registrar   pkgif.Registrar
}

// injectNodeComponents 创建 Node 组件注入函数
func injectNodeComponents(node *Node) interface{} {
	return func(params nodeInjectParams) {
		node.eventBus = params.EventBus
		node.connMgr = params.ConnManager
		node.registrar = params.Registrar
	}
}
