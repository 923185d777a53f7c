package registrar

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"go.uber.org/multierr"

	pkgif "github.com/dep2p/go-registrar/pkg/interfaces"
	"github.com/dep2p/go-registrar/pkg/lib/log"
	"github.com/dep2p/go-registrar/pkg/types"
)

var logger = log.Logger("core/registrar")

// entry 注册表中的一条记录
type entry struct {
	topology     pkgif.Topology
	registeredAt time.Time
}

// snapshotEntry 扇出快照中的一条记录
type snapshotEntry struct {
	id       types.RegistrationID
	topology pkgif.Topology
}

// Registrar 协议注册器
type Registrar struct {
	cfg     Config
	source  pkgif.ConnectionSource
	clock   clock.Clock
	metrics *Metrics
	bus     pkgif.EventBus

	mu            sync.RWMutex
	closed        bool
	registrations map[types.RegistrationID]entry

	handlerMu sync.RWMutex
	handler   pkgif.StreamHandler

	// notifiee 绑定到连接事件源的订阅者
	notifiee *notifiee

	// 事件发射器（可选）
	registeredEm   pkgif.Emitter
	unregisteredEm pkgif.Emitter
	failedEm       pkgif.Emitter

	closeOnce sync.Once
}

var _ pkgif.Registrar = (*Registrar)(nil)

// New 创建协议注册器并订阅 source 的断开事件
func New(source pkgif.ConnectionSource, cfg Config, opts ...Option) (*Registrar, error) {
	if source == nil {
		return nil, ErrNilSource
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Registrar{
		cfg:           cfg,
		source:        source,
		clock:         clock.New(),
		registrations: make(map[types.RegistrationID]entry),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.bus != nil && cfg.EmitEvents {
		if err := r.initEmitters(); err != nil {
			r.closeEmitters()
			return nil, err
		}
	}

	r.notifiee = &notifiee{r: r}
	source.Notify(r.notifiee)

	logger.Debug("协议注册器已创建",
		"emitEvents", r.registeredEm != nil,
		"metrics", r.metrics != nil,
		"slowThreshold", cfg.SlowHandlerThreshold)
	return r, nil
}

func (r *Registrar) initEmitters() error {
	var err error
	if r.registeredEm, err = r.bus.Emitter(new(types.EvtTopologyRegistered)); err != nil {
		return err
	}
	if r.unregisteredEm, err = r.bus.Emitter(new(types.EvtTopologyUnregistered)); err != nil {
		return err
	}
	if r.failedEm, err = r.bus.Emitter(new(types.EvtTopologyFailed)); err != nil {
		return err
	}
	return nil
}

// ============================================================================
//                              注册管理
// ============================================================================

// Register 注册拓扑
//
// 先设置拓扑的反向引用再插入注册表，因此拓扑收到第一个断开事件时
// 一定已经可以通过 Registrar 查询连接。
func (r *Registrar) Register(topology pkgif.Topology) (types.RegistrationID, error) {
	if isNil(topology) {
		return "", fmt.Errorf("%w: topology is nil", ErrInvalidParameter)
	}

	r.mu.RLock()
	closed := r.closed
	r.mu.RUnlock()
	if closed {
		return "", ErrClosed
	}

	// 不持锁调用，拓扑可以在 SetRegistrar 中回调 Registrar
	topology.SetRegistrar(r)

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return "", ErrClosed
	}
	id := r.newIDLocked()
	r.registrations[id] = entry{
		topology:     topology,
		registeredAt: r.clock.Now(),
	}
	count := len(r.registrations)
	r.mu.Unlock()

	r.metrics.onRegister()
	r.emit(r.registeredEm, &types.EvtTopologyRegistered{
		BaseEvent: types.NewBaseEvent(types.EventTypeTopologyRegistered),
		ID:        id,
	})

	logger.Debug("拓扑已注册", "id", id.ShortString(), "count", count)
	return id, nil
}

// Unregister 注销拓扑
//
// 返回是否确实删除了注册。拓扑的反向引用保持不变。
func (r *Registrar) Unregister(id types.RegistrationID) bool {
	r.mu.Lock()
	if _, ok := r.registrations[id]; !ok {
		r.mu.Unlock()
		return false
	}
	delete(r.registrations, id)
	count := len(r.registrations)
	r.mu.Unlock()

	r.metrics.onUnregister()
	r.emit(r.unregisteredEm, &types.EvtTopologyUnregistered{
		BaseEvent: types.NewBaseEvent(types.EventTypeTopologyUnregistered),
		ID:        id,
	})

	logger.Debug("拓扑已注销", "id", id.ShortString(), "count", count)
	return true
}

// newIDLocked 生成新的注册标识，调用方必须持有写锁
func (r *Registrar) newIDLocked() types.RegistrationID {
	for {
		id := types.RegistrationID(uuid.New().String())
		if _, exists := r.registrations[id]; !exists {
			return id
		}
	}
}

// Topologies 返回当前注册的快照，按注册时间排序
func (r *Registrar) Topologies() []pkgif.Registration {
	r.mu.RLock()
	out := make([]pkgif.Registration, 0, len(r.registrations))
	for id, e := range r.registrations {
		out = append(out, pkgif.Registration{
			ID:           id,
			Topology:     e.topology,
			RegisteredAt: e.registeredAt,
		})
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].RegisteredAt.Equal(out[j].RegisteredAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].RegisteredAt.Before(out[j].RegisteredAt)
	})
	return out
}

// Len 返回当前注册数量
func (r *Registrar) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.registrations)
}

// ============================================================================
//                              连接查询
// ============================================================================

// GetConnection 获取与指定节点的连接，直接委托给连接事件源
func (r *Registrar) GetConnection(peer types.PeerID) (pkgif.Connection, bool) {
	return r.source.Get(peer)
}

// ============================================================================
//                              默认流处理器
// ============================================================================

// Handle 返回当前默认流处理器
func (r *Registrar) Handle() pkgif.StreamHandler {
	r.handlerMu.RLock()
	defer r.handlerMu.RUnlock()
	return r.handler
}

// SetHandle 替换默认流处理器，nil 表示清除
func (r *Registrar) SetHandle(handler pkgif.StreamHandler) {
	r.handlerMu.Lock()
	r.handler = handler
	r.handlerMu.Unlock()
}

// ============================================================================
//                              断开扇出
// ============================================================================

// notifiee 把连接事件源的通知转发给 Registrar
type notifiee struct {
	r *Registrar
}

var _ pkgif.ConnNotifier = (*notifiee)(nil)

// Connected 连接建立通知由拓扑自己处理，这里忽略
func (n *notifiee) Connected(pkgif.Connection) {}

// Disconnected 节点断开通知
func (n *notifiee) Disconnected(conn pkgif.Connection, err error) {
	_ = n.r.onDisconnect(conn, err)
}

// snapshot 在读锁下复制当前注册表
func (r *Registrar) snapshot() []snapshotEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil
	}
	out := make([]snapshotEntry, 0, len(r.registrations))
	for id, e := range r.registrations {
		out = append(out, snapshotEntry{id: id, topology: e.topology})
	}
	return out
}

// onDisconnect 把断开事件扇出给快照中的每个拓扑
//
// 在调用方 goroutine 上同步执行，不持锁调用拓扑。
// 返回所有失败拓扑的 *TopologyError 的聚合。
func (r *Registrar) onDisconnect(conn pkgif.Connection, cause error) error {
	if conn == nil {
		return nil
	}
	peer := conn.RemotePeer()

	snap := r.snapshot()
	if len(snap) == 0 {
		return nil
	}

	start := r.clock.Now()
	var errs error
	for _, e := range snap {
		errs = multierr.Append(errs, r.deliver(e, peer, cause))
	}

	failures := len(multierr.Errors(errs))
	r.metrics.onFanout(r.clock.Since(start), failures)

	if errs != nil {
		logger.Warn("部分拓扑处理断开事件失败",
			"peer", peer.ShortString(),
			"topologies", len(snap),
			"failures", failures,
			"err", errs)
	} else {
		logger.Debug("断开事件已扇出", "peer", peer.ShortString(), "topologies", len(snap))
	}
	return errs
}

// deliver 向单个拓扑投递断开事件，panic 被恢复为 *TopologyError
func (r *Registrar) deliver(e snapshotEntry, peer types.PeerID, cause error) (err error) {
	start := r.clock.Now()
	defer func() {
		if rec := recover(); rec != nil {
			terr := &TopologyError{ID: e.id, Peer: peer, Cause: panicError(rec)}
			logger.Error("拓扑处理断开事件 panic",
				"id", e.id.ShortString(),
				"peer", peer.ShortString(),
				"panic", rec)
			r.emit(r.failedEm, &types.EvtTopologyFailed{
				BaseEvent: types.NewBaseEvent(types.EventTypeTopologyFailed),
				ID:        e.id,
				PeerID:    peer,
				Error:     terr,
			})
			err = terr
		}
		r.checkSlow(e.id, peer, r.clock.Since(start))
	}()

	e.topology.Disconnect(peer, cause)
	return nil
}

// checkSlow 单个拓扑耗时超过阈值时告警
func (r *Registrar) checkSlow(id types.RegistrationID, peer types.PeerID, elapsed time.Duration) {
	threshold := r.cfg.SlowHandlerThreshold
	if threshold <= 0 || elapsed <= threshold {
		return
	}
	r.metrics.onSlowHandler()
	logger.Warn("拓扑处理断开事件过慢",
		"id", id.ShortString(),
		"peer", peer.ShortString(),
		"elapsed", elapsed,
		"threshold", threshold)
}

// ============================================================================
//                              生命周期
// ============================================================================

// Close 从连接事件源解绑
//
// 之后 Register 返回 ErrClosed，不再收到断开事件；已有注册保留，
// Unregister / Topologies / GetConnection 仍可使用。重复调用返回 nil。
func (r *Registrar) Close() error {
	r.closeOnce.Do(func() {
		r.mu.Lock()
		r.closed = true
		r.mu.Unlock()

		r.source.StopNotify(r.notifiee)
		r.closeEmitters()

		logger.Debug("协议注册器已关闭")
	})
	return nil
}

func (r *Registrar) closeEmitters() {
	for _, em := range []pkgif.Emitter{r.registeredEm, r.unregisteredEm, r.failedEm} {
		if em != nil {
			em.Close()
		}
	}
}

// emit 发布事件，em 为 nil 时忽略
func (r *Registrar) emit(em pkgif.Emitter, evt interface{}) {
	if em == nil {
		return
	}
	if err := em.Emit(evt); err != nil {
		logger.Debug("发布事件失败", "err", err)
	}
}

// isNil 判断接口值是否为 nil，包括带类型的 nil 指针
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
