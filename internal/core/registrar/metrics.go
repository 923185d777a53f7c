package registrar

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "dep2p"
	metricsSubsystem = "registrar"
)

// Metrics 协议注册器指标
//
// 所有方法对 nil 接收者安全，未启用指标时直接传 nil。
type Metrics struct {
	registrations  prometheus.Gauge
	registered     prometheus.Counter
	unregistered   prometheus.Counter
	disconnects    prometheus.Counter
	failures       prometheus.Counter
	slowHandlers   prometheus.Counter
	fanoutDuration prometheus.Histogram
}

// NewMetrics 创建并注册指标
//
// reg 为 nil 时指标不注册到任何 Registry（仍可读取，主要用于测试）。
// 同名指标已注册时复用已有的收集器。
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		registrations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "registrations",
			Help:      "Number of currently registered topologies.",
		}),
		registered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "registered_total",
			Help:      "Total number of topology registrations.",
		}),
		unregistered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "unregistered_total",
			Help:      "Total number of topology unregistrations.",
		}),
		disconnects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "disconnect_events_total",
			Help:      "Total number of peer disconnect events fanned out to topologies.",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "handler_failures_total",
			Help:      "Total number of topology disconnect handlers that panicked.",
		}),
		slowHandlers: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "slow_handlers_total",
			Help:      "Total number of topology disconnect handlers exceeding the slow threshold.",
		}),
		fanoutDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "fanout_duration_seconds",
			Help:      "Time spent delivering one disconnect event to all topologies.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}

	if reg == nil {
		return m, nil
	}

	var err error
	if m.registrations, err = registerOrReuse(reg, m.registrations); err != nil {
		return nil, err
	}
	if m.registered, err = registerOrReuse(reg, m.registered); err != nil {
		return nil, err
	}
	if m.unregistered, err = registerOrReuse(reg, m.unregistered); err != nil {
		return nil, err
	}
	if m.disconnects, err = registerOrReuse(reg, m.disconnects); err != nil {
		return nil, err
	}
	if m.failures, err = registerOrReuse(reg, m.failures); err != nil {
		return nil, err
	}
	if m.slowHandlers, err = registerOrReuse(reg, m.slowHandlers); err != nil {
		return nil, err
	}
	if m.fanoutDuration, err = registerOrReuse(reg, m.fanoutDuration); err != nil {
		return nil, err
	}
	return m, nil
}

// registerOrReuse 注册收集器，已存在时返回已注册的实例
func registerOrReuse[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *Metrics) onRegister() {
	if m == nil {
		return
	}
	m.registrations.Inc()
	m.registered.Inc()
}

func (m *Metrics) onUnregister() {
	if m == nil {
		return
	}
	m.registrations.Dec()
	m.unregistered.Inc()
}

func (m *Metrics) onFanout(d time.Duration, failures int) {
	if m == nil {
		return
	}
	m.disconnects.Inc()
	m.fanoutDuration.Observe(d.Seconds())
	m.failures.Add(float64(failures))
}

func (m *Metrics) onSlowHandler() {
	if m == nil {
		return
	}
	m.slowHandlers.Inc()
}
