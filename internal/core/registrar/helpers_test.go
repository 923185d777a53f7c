package registrar

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dep2p/go-registrar/internal/core/connmgr"
	pkgif "github.com/dep2p/go-registrar/pkg/interfaces"
	"github.com/dep2p/go-registrar/pkg/interfaces/mocks"
	"github.com/dep2p/go-registrar/pkg/lib/log"
	"github.com/dep2p/go-registrar/pkg/types"
)

func init() {
	log.Discard()
}

// ============================================================================
//                              测试辅助
// ============================================================================

// newTestRegistrar 创建绑定到真实连接管理器的注册器
func newTestRegistrar(t *testing.T, opts ...Option) (*Registrar, *connmgr.Manager) {
	t.Helper()

	mgr, err := connmgr.New(connmgr.DefaultConfig(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { mgr.Close() })

	r, err := New(mgr, DefaultConfig(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })

	return r, mgr
}

// newMockConn 创建指向 peer 的 mock 连接
func newMockConn(ctrl *gomock.Controller, id string, peer types.PeerID) *mocks.MockConnection {
	c := mocks.NewMockConnection(ctrl)
	c.EXPECT().ID().Return(id).AnyTimes()
	c.EXPECT().RemotePeer().Return(peer).AnyTimes()
	c.EXPECT().Direction().Return(types.DirInbound).AnyTimes()
	return c
}

// connectAndDrop 通过连接管理器模拟一次完整的连接与断开
func connectAndDrop(mgr pkgif.ConnManager, conn pkgif.Connection, err error) {
	mgr.Connected(conn)
	mgr.Disconnected(conn, err)
}

// disconnectCall 一次 Disconnect 调用记录
type disconnectCall struct {
	peer types.PeerID
	err  error
}

// recordingTopology 记录所有 Disconnect 调用的拓扑
type recordingTopology struct {
	mu        sync.Mutex
	registrar pkgif.Registrar
	calls     []disconnectCall

	// onDisconnect 可选的回调钩子，在记录之后调用
	onDisconnect func(peer types.PeerID, err error)
}

var _ pkgif.Topology = (*recordingTopology)(nil)

func (t *recordingTopology) Disconnect(peer types.PeerID, err error) {
	t.mu.Lock()
	t.calls = append(t.calls, disconnectCall{peer: peer, err: err})
	hook := t.onDisconnect
	t.mu.Unlock()

	if hook != nil {
		hook(peer, err)
	}
}

func (t *recordingTopology) SetRegistrar(r pkgif.Registrar) {
	t.mu.Lock()
	t.registrar = r
	t.mu.Unlock()
}

func (t *recordingTopology) callCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.calls)
}

func (t *recordingTopology) backRef() pkgif.Registrar {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.registrar
}
