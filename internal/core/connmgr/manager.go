package connmgr

import (
	"sync"

	pkgif "github.com/dep2p/go-registrar/pkg/interfaces"
	"github.com/dep2p/go-registrar/pkg/lib/log"
	"github.com/dep2p/go-registrar/pkg/types"
)

var logger = log.Logger("core/connmgr")

// Manager 连接管理器
type Manager struct {
	cfg Config

	mu     sync.RWMutex
	closed bool

	// conns 节点 -> 活跃连接（按加入顺序）
	conns map[types.PeerID][]pkgif.Connection

	// notifiers 连接事件订阅者
	notifierMu sync.RWMutex
	notifiers  []pkgif.ConnNotifier

	// 事件发射器（可选）
	connectedEm    pkgif.Emitter
	disconnectedEm pkgif.Emitter
}

var _ pkgif.ConnManager = (*Manager)(nil)

// New 创建连接管理器
//
// bus 可以为 nil，此时不发布事件。
func New(cfg Config, bus pkgif.EventBus) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Manager{
		cfg:   cfg,
		conns: make(map[types.PeerID][]pkgif.Connection),
	}

	if bus != nil && cfg.EmitEvents {
		var err error
		if m.connectedEm, err = bus.Emitter(new(types.EvtPeerConnected)); err != nil {
			return nil, err
		}
		if m.disconnectedEm, err = bus.Emitter(new(types.EvtPeerDisconnected)); err != nil {
			m.connectedEm.Close()
			return nil, err
		}
	}

	return m, nil
}

// ============================================================================
//                              连接输入
// ============================================================================

// Connected 记录一条新连接
//
// 与该节点的第一条连接会触发 Connected 通知。重复加入同一条连接被忽略。
func (m *Manager) Connected(conn pkgif.Connection) {
	if conn == nil {
		return
	}
	peer := conn.RemotePeer()

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	existing := m.conns[peer]
	for _, c := range existing {
		if c.ID() == conn.ID() {
			m.mu.Unlock()
			return
		}
	}
	m.conns[peer] = append(existing, conn)
	first := len(existing) == 0
	m.mu.Unlock()

	if !first {
		return
	}

	logger.Debug("节点已连接", "peer", peer.ShortString(), "conn", log.TruncateID(conn.ID(), 8))

	m.forEachNotifier(func(n pkgif.ConnNotifier) {
		n.Connected(conn)
	})

	if m.connectedEm != nil {
		if err := m.connectedEm.Emit(&types.EvtPeerConnected{
			BaseEvent: types.NewBaseEvent(types.EventTypePeerConnected),
			PeerID:    peer,
			Direction: conn.Direction(),
		}); err != nil {
			logger.Debug("发布连接事件失败", "err", err)
		}
	}
}

// Disconnected 移除一条连接
//
// 与该节点的最后一条连接移除后触发 Disconnected 通知，err 原样传递。
// 未知连接被忽略。
func (m *Manager) Disconnected(conn pkgif.Connection, err error) {
	if conn == nil {
		return
	}
	peer := conn.RemotePeer()

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	existing := m.conns[peer]
	idx := -1
	for i, c := range existing {
		if c.ID() == conn.ID() {
			idx = i
			break
		}
	}
	if idx < 0 {
		m.mu.Unlock()
		return
	}
	remaining := make([]pkgif.Connection, 0, len(existing)-1)
	remaining = append(remaining, existing[:idx]...)
	remaining = append(remaining, existing[idx+1:]...)
	last := len(remaining) == 0
	if last {
		delete(m.conns, peer)
	} else {
		m.conns[peer] = remaining
	}
	m.mu.Unlock()

	if !last {
		return
	}

	logger.Debug("节点已断开", "peer", peer.ShortString(), "err", err)

	m.forEachNotifier(func(n pkgif.ConnNotifier) {
		n.Disconnected(conn, err)
	})

	if m.disconnectedEm != nil {
		if emitErr := m.disconnectedEm.Emit(&types.EvtPeerDisconnected{
			BaseEvent: types.NewBaseEvent(types.EventTypePeerDisconnected),
			PeerID:    peer,
			Reason:    types.ReasonFromError(err),
			Error:     err,
		}); emitErr != nil {
			logger.Debug("发布断开事件失败", "err", emitErr)
		}
	}
}

// ============================================================================
//                              连接查询
// ============================================================================

// Get 返回与指定节点最近加入的活跃连接
func (m *Manager) Get(peer types.PeerID) (pkgif.Connection, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	conns := m.conns[peer]
	if len(conns) == 0 {
		return nil, false
	}
	return conns[len(conns)-1], true
}

// Peers 返回所有已连接的节点
func (m *Manager) Peers() []types.PeerID {
	m.mu.RLock()
	defer m.mu.RUnlock()

	peers := make([]types.PeerID, 0, len(m.conns))
	for p := range m.conns {
		peers = append(peers, p)
	}
	return peers
}

// ConnCount 返回当前连接数
func (m *Manager) ConnCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, conns := range m.conns {
		n += len(conns)
	}
	return n
}

// ============================================================================
//                              通知订阅
// ============================================================================

// Notify 注册连接事件通知
//
// nil 与重复注册被忽略。notifier 必须是可比较类型（通常为指针）。
func (m *Manager) Notify(notifier pkgif.ConnNotifier) {
	if notifier == nil {
		return
	}

	m.notifierMu.Lock()
	defer m.notifierMu.Unlock()

	for _, n := range m.notifiers {
		if n == notifier {
			return
		}
	}
	m.notifiers = append(m.notifiers, notifier)
}

// StopNotify 取消连接事件通知
func (m *Manager) StopNotify(notifier pkgif.ConnNotifier) {
	if notifier == nil {
		return
	}

	m.notifierMu.Lock()
	defer m.notifierMu.Unlock()

	for i, n := range m.notifiers {
		if n == notifier {
			m.notifiers = append(m.notifiers[:i:i], m.notifiers[i+1:]...)
			return
		}
	}
}

// forEachNotifier 对订阅者快照逐个同步调用 fn
//
// 单个订阅者 panic 不影响其余订阅者。
func (m *Manager) forEachNotifier(fn func(pkgif.ConnNotifier)) {
	m.notifierMu.RLock()
	notifiers := make([]pkgif.ConnNotifier, len(m.notifiers))
	copy(notifiers, m.notifiers)
	m.notifierMu.RUnlock()

	for _, n := range notifiers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("连接事件订阅者 panic", "panic", r)
				}
			}()
			fn(n)
		}()
	}
}

// ============================================================================
//                              生命周期
// ============================================================================

// Close 关闭连接管理器
//
// 丢弃所有连接记录与订阅者，之后的连接输入被忽略。重复调用返回 nil。
func (m *Manager) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	m.conns = make(map[types.PeerID][]pkgif.Connection)
	m.mu.Unlock()

	m.notifierMu.Lock()
	m.notifiers = nil
	m.notifierMu.Unlock()

	if m.connectedEm != nil {
		m.connectedEm.Close()
	}
	if m.disconnectedEm != nil {
		m.disconnectedEm.Close()
	}

	logger.Debug("连接管理器已关闭")
	return nil
}
