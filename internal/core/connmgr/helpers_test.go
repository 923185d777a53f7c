package connmgr

import (
	"sync"
	"time"

	pkgif "github.com/dep2p/go-registrar/pkg/interfaces"
	"github.com/dep2p/go-registrar/pkg/types"
)

// ============================================================================
//                              测试辅助
// ============================================================================

// testConn 测试用连接
type testConn struct {
	id     string
	remote types.PeerID
	dir    types.Direction
	opened time.Time
}

func newTestConn(id string, remote types.PeerID) *testConn {
	return &testConn{id: id, remote: remote, dir: types.DirOutbound, opened: time.Now()}
}

func (c *testConn) ID() string                 { return c.id }
func (c *testConn) LocalPeer() types.PeerID    { return "local" }
func (c *testConn) RemotePeer() types.PeerID   { return c.remote }
func (c *testConn) Direction() types.Direction { return c.dir }
func (c *testConn) Opened() time.Time          { return c.opened }
func (c *testConn) Close() error               { return nil }

var _ pkgif.Connection = (*testConn)(nil)

// recordingNotifier 记录收到的通知
type recordingNotifier struct {
	mu           sync.Mutex
	connected    []types.PeerID
	disconnected []types.PeerID
	errs         []error

	// onDisconnected 可选的回调钩子
	onDisconnected func()
}

func (n *recordingNotifier) Connected(conn pkgif.Connection) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.connected = append(n.connected, conn.RemotePeer())
}

func (n *recordingNotifier) Disconnected(conn pkgif.Connection, err error) {
	n.mu.Lock()
	n.disconnected = append(n.disconnected, conn.RemotePeer())
	n.errs = append(n.errs, err)
	hook := n.onDisconnected
	n.mu.Unlock()

	if hook != nil {
		hook()
	}
}

func (n *recordingNotifier) disconnectedCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.disconnected)
}

// panicNotifier 每次通知都 panic
type panicNotifier struct{}

func (panicNotifier) Connected(pkgif.Connection)           { panic("connected boom") }
func (panicNotifier) Disconnected(pkgif.Connection, error) { panic("disconnected boom") }
