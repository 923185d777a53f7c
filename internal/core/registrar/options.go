package registrar

import (
	"github.com/benbjohnson/clock"

	pkgif "github.com/dep2p/go-registrar/pkg/interfaces"
)

// Option 协议注册器选项
type Option func(*Registrar)

// WithClock 设置时钟（测试时注入 clock.NewMock()）
func WithClock(c clock.Clock) Option {
	return func(r *Registrar) {
		if c != nil {
			r.clock = c
		}
	}
}

// WithMetrics 设置指标收集器，nil 表示不收集
func WithMetrics(m *Metrics) Option {
	return func(r *Registrar) {
		r.metrics = m
	}
}

// WithEventBus 设置事件总线
//
// 配置 EmitEvents 为 true 时发布拓扑注册/注销/失败事件。
func WithEventBus(bus pkgif.EventBus) Option {
	return func(r *Registrar) {
		r.bus = bus
	}
}
