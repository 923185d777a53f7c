package topology

import (
	"sort"
	"sync"

	pkgif "github.com/dep2p/go-registrar/pkg/interfaces"
	"github.com/dep2p/go-registrar/pkg/lib/log"
	"github.com/dep2p/go-registrar/pkg/types"
)

var logger = log.Logger("core/topology")

// Topology 跟踪一组节点的拓扑
type Topology struct {
	cfg Config

	mu        sync.RWMutex
	peers     map[types.PeerID]struct{}
	registrar pkgif.Registrar
}

var _ pkgif.Topology = (*Topology)(nil)

// New 创建拓扑
func New(cfg Config) (*Topology, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Max == 0 {
		cfg.Max = Infinity
	}
	return &Topology{
		cfg:   cfg,
		peers: make(map[types.PeerID]struct{}),
	}, nil
}

// Connect 开始跟踪节点
//
// 已跟踪的节点返回 true 且不重复回调；达到 Max 或节点 ID 无效时返回 false。
func (t *Topology) Connect(peer types.PeerID) bool {
	if err := peer.Validate(); err != nil {
		logger.Debug("忽略无效节点", "peer", peer, "err", err)
		return false
	}

	t.mu.Lock()
	if _, ok := t.peers[peer]; ok {
		t.mu.Unlock()
		return true
	}
	if len(t.peers) >= t.cfg.Max {
		t.mu.Unlock()
		logger.Debug("拓扑已满", "peer", peer.ShortString(), "max", t.cfg.Max)
		return false
	}
	t.peers[peer] = struct{}{}
	t.mu.Unlock()

	if t.cfg.OnConnect != nil {
		t.cfg.OnConnect(peer)
	}
	return true
}

// Disconnect 实现 pkgif.Topology
//
// 未跟踪的节点直接忽略。
func (t *Topology) Disconnect(peer types.PeerID, err error) {
	t.mu.Lock()
	if _, ok := t.peers[peer]; !ok {
		t.mu.Unlock()
		return
	}
	delete(t.peers, peer)
	t.mu.Unlock()

	logger.Debug("跟踪的节点已断开", "peer", peer.ShortString(), "err", err)

	if t.cfg.OnDisconnect != nil {
		t.cfg.OnDisconnect(peer, err)
	}
}

// SetRegistrar 实现 pkgif.Topology
func (t *Topology) SetRegistrar(r pkgif.Registrar) {
	t.mu.Lock()
	t.registrar = r
	t.mu.Unlock()
}

// Registrar 返回所属 Registrar，未注册时为 nil
func (t *Topology) Registrar() pkgif.Registrar {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.registrar
}

// Connection 通过所属 Registrar 查询与节点的连接
func (t *Topology) Connection(peer types.PeerID) (pkgif.Connection, error) {
	r := t.Registrar()
	if r == nil {
		return nil, ErrNotRegistered
	}
	conn, ok := r.GetConnection(peer)
	if !ok {
		return nil, ErrNoConnection
	}
	return conn, nil
}

// HasPeer 是否正在跟踪该节点
func (t *Topology) HasPeer(peer types.PeerID) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.peers[peer]
	return ok
}

// Peers 返回跟踪的节点（已排序）
func (t *Topology) Peers() []types.PeerID {
	t.mu.RLock()
	out := make([]types.PeerID, 0, len(t.peers))
	for p := range t.peers {
		out = append(out, p)
	}
	t.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len 返回跟踪的节点数
func (t *Topology) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.peers)
}

// NeedsPeers 跟踪的节点数是否低于 Min
func (t *Topology) NeedsPeers() bool {
	return t.Len() < t.cfg.Min
}

// Min 返回期望的最少节点数
func (t *Topology) Min() int {
	return t.cfg.Min
}

// Max 返回最多跟踪的节点数
func (t *Topology) Max() int {
	return t.cfg.Max
}
