package registrar

import (
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/multierr"

	"github.com/dep2p/go-registrar/internal/core/eventbus"
	"github.com/dep2p/go-registrar/pkg/interfaces/mocks"
	"github.com/dep2p/go-registrar/pkg/types"
)

// ============================================================================
//                              基本扇出
// ============================================================================

// TestFanout_TwoTopologies 注册 A、B，断开 P，两者各收到一次；随后注销 A
func TestFanout_TwoTopologies(t *testing.T) {
	ctrl := gomock.NewController(t)
	r, mgr := newTestRegistrar(t)

	a := mocks.NewMockTopology(ctrl)
	b := mocks.NewMockTopology(ctrl)
	a.EXPECT().SetRegistrar(r)
	b.EXPECT().SetRegistrar(r)

	idA, err := r.Register(a)
	require.NoError(t, err)
	_, err = r.Register(b)
	require.NoError(t, err)

	peer := types.PeerID("peer-P")
	a.EXPECT().Disconnect(peer, gomock.Nil()).Times(1)
	b.EXPECT().Disconnect(peer, gomock.Nil()).Times(1)

	connectAndDrop(mgr, newMockConn(ctrl, "c1", peer), nil)

	assert.True(t, r.Unregister(idA))
	assert.False(t, r.Unregister(idA))

	t.Log("✅ 两个拓扑各收到一次断开事件")
}

// TestFanout_ErrorPassThrough 测试断开原因原样传递
func TestFanout_ErrorPassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	r, mgr := newTestRegistrar(t)

	topo := &recordingTopology{}
	_, err := r.Register(topo)
	require.NoError(t, err)

	cause := errors.New("connection reset by peer")
	connectAndDrop(mgr, newMockConn(ctrl, "c1", "peer-a"), cause)

	require.Equal(t, 1, topo.callCount())
	assert.Equal(t, types.PeerID("peer-a"), topo.calls[0].peer)
	assert.ErrorIs(t, topo.calls[0].err, cause)
}

// TestFanout_NoFiltering 测试注册器不做节点过滤
func TestFanout_NoFiltering(t *testing.T) {
	r, _ := newTestRegistrar(t)
	ctrl := gomock.NewController(t)

	topo := &recordingTopology{}
	_, err := r.Register(topo)
	require.NoError(t, err)

	for _, p := range []types.PeerID{"peer-a", "peer-b", "peer-c"} {
		require.NoError(t, r.onDisconnect(newMockConn(ctrl, "c", p), nil))
	}
	assert.Equal(t, 3, topo.callCount())
}

// TestFanout_NoRegistrations 测试没有注册时的断开事件
func TestFanout_NoRegistrations(t *testing.T) {
	ctrl := gomock.NewController(t)
	r, _ := newTestRegistrar(t)

	assert.NoError(t, r.onDisconnect(newMockConn(ctrl, "c1", "peer-a"), nil))
	assert.NoError(t, r.onDisconnect(nil, nil))
}

// ============================================================================
//                              重入
// ============================================================================

// TestFanout_UnregisterDuringDelivery t1 在扇出中注销 t2：
// t2 仍收到本次事件，但收不到之后的事件
func TestFanout_UnregisterDuringDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	r, mgr := newTestRegistrar(t)

	t2 := &recordingTopology{}
	id2, err := r.Register(t2)
	require.NoError(t, err)

	t1 := &recordingTopology{}
	t1.onDisconnect = func(types.PeerID, error) {
		r.Unregister(id2)
	}
	_, err = r.Register(t1)
	require.NoError(t, err)

	connectAndDrop(mgr, newMockConn(ctrl, "c1", "peer-a"), nil)
	assert.Equal(t, 1, t1.callCount())
	assert.Equal(t, 1, t2.callCount(), "快照中的拓扑应收到本次事件")

	connectAndDrop(mgr, newMockConn(ctrl, "c2", "peer-b"), nil)
	assert.Equal(t, 2, t1.callCount())
	assert.Equal(t, 1, t2.callCount(), "已注销的拓扑不应收到之后的事件")

	t.Log("✅ 扇出中注销语义正确")
}

// TestFanout_RegisterDuringDelivery 扇出中新注册的拓扑不收到本次事件
func TestFanout_RegisterDuringDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	r, mgr := newTestRegistrar(t)

	late := &recordingTopology{}
	registered := false
	t1 := &recordingTopology{}
	t1.onDisconnect = func(types.PeerID, error) {
		if registered {
			return
		}
		registered = true
		_, err := r.Register(late)
		assert.NoError(t, err)
	}
	_, err := r.Register(t1)
	require.NoError(t, err)

	connectAndDrop(mgr, newMockConn(ctrl, "c1", "peer-a"), nil)
	assert.Equal(t, 0, late.callCount(), "新注册的拓扑不应收到本次事件")
	assert.Equal(t, 2, r.Len())

	connectAndDrop(mgr, newMockConn(ctrl, "c2", "peer-b"), nil)
	assert.Equal(t, 1, late.callCount())

	t.Log("✅ 扇出中注册语义正确")
}

// TestFanout_SelfUnregister 拓扑在回调中注销自己
func TestFanout_SelfUnregister(t *testing.T) {
	ctrl := gomock.NewController(t)
	r, mgr := newTestRegistrar(t)

	var id types.RegistrationID
	topo := &recordingTopology{}
	topo.onDisconnect = func(types.PeerID, error) {
		assert.True(t, r.Unregister(id))
	}
	id, _ = r.Register(topo)

	connectAndDrop(mgr, newMockConn(ctrl, "c1", "peer-a"), nil)
	connectAndDrop(mgr, newMockConn(ctrl, "c2", "peer-b"), nil)

	assert.Equal(t, 1, topo.callCount())
	assert.Equal(t, 0, r.Len())
}

// ============================================================================
//                              失败隔离
// ============================================================================

// TestFanout_PanicIsolation 单个拓扑 panic 不影响其他拓扑
func TestFanout_PanicIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, err := NewMetrics(nil)
	require.NoError(t, err)
	r, _ := newTestRegistrar(t, WithMetrics(m))

	bad := &recordingTopology{}
	bad.onDisconnect = func(types.PeerID, error) {
		panic("boom")
	}
	badID, err := r.Register(bad)
	require.NoError(t, err)

	good := &recordingTopology{}
	_, err = r.Register(good)
	require.NoError(t, err)

	var fanoutErr error
	assert.NotPanics(t, func() {
		fanoutErr = r.onDisconnect(newMockConn(ctrl, "c1", "peer-a"), nil)
	})

	assert.Equal(t, 1, good.callCount(), "健康拓扑应收到事件")
	require.Error(t, fanoutErr)
	assert.ErrorIs(t, fanoutErr, ErrTopologyPanic)

	var terr *TopologyError
	require.ErrorAs(t, fanoutErr, &terr)
	assert.Equal(t, badID, terr.ID)
	assert.Equal(t, types.PeerID("peer-a"), terr.Peer)
	assert.Contains(t, terr.Error(), "boom")

	assert.Equal(t, float64(1), testutil.ToFloat64(m.failures))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.disconnects))

	t.Log("✅ panic 被隔离")
}

// TestFanout_MultipleFailures 多个失败被聚合
func TestFanout_MultipleFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	r, _ := newTestRegistrar(t)

	cause := errors.New("handler exploded")
	for i := 0; i < 3; i++ {
		topo := &recordingTopology{}
		topo.onDisconnect = func(types.PeerID, error) {
			panic(cause)
		}
		_, err := r.Register(topo)
		require.NoError(t, err)
	}

	err := r.onDisconnect(newMockConn(ctrl, "c1", "peer-a"), nil)
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)
	assert.ErrorIs(t, err, cause, "panic 值为 error 时应保留错误链")
}

// TestFanout_FailedEvent 失败事件发布到事件总线
func TestFanout_FailedEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	bus := eventbus.NewBus()
	r, mgr := newTestRegistrar(t, WithEventBus(bus))

	sub, err := bus.Subscribe(new(types.EvtTopologyFailed))
	require.NoError(t, err)
	defer sub.Close()

	bad := &recordingTopology{}
	bad.onDisconnect = func(types.PeerID, error) {
		panic("boom")
	}
	id, err := r.Register(bad)
	require.NoError(t, err)

	connectAndDrop(mgr, newMockConn(ctrl, "c1", "peer-a"), nil)

	select {
	case evt := <-sub.Out():
		e, ok := evt.(*types.EvtTopologyFailed)
		require.True(t, ok)
		assert.Equal(t, id, e.ID)
		assert.Equal(t, types.PeerID("peer-a"), e.PeerID)
		assert.ErrorIs(t, e.Error, ErrTopologyPanic)
	case <-time.After(time.Second):
		t.Fatal("未收到拓扑失败事件")
	}
}

// ============================================================================
//                              慢处理检测
// ============================================================================

// TestFanout_SlowHandler 测试慢拓扑告警
func TestFanout_SlowHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := clock.NewMock()
	m, err := NewMetrics(nil)
	require.NoError(t, err)
	r, _ := newTestRegistrar(t, WithClock(mock), WithMetrics(m))

	slow := &recordingTopology{}
	slow.onDisconnect = func(types.PeerID, error) {
		mock.Add(DefaultConfig().SlowHandlerThreshold * 2)
	}
	_, err = r.Register(slow)
	require.NoError(t, err)

	fast := &recordingTopology{}
	_, err = r.Register(fast)
	require.NoError(t, err)

	require.NoError(t, r.onDisconnect(newMockConn(ctrl, "c1", "peer-a"), nil))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.slowHandlers))
	assert.Equal(t, 1, fast.callCount())

	t.Log("✅ 慢拓扑检测正确")
}

// TestFanout_SlowHandlerDisabled 阈值为 0 时不检测
func TestFanout_SlowHandlerDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockConnectionSource(ctrl)
	src.EXPECT().Notify(gomock.Any())
	src.EXPECT().StopNotify(gomock.Any())

	mock := clock.NewMock()
	m, _ := NewMetrics(nil)
	cfg := DefaultConfig()
	cfg.SlowHandlerThreshold = 0

	r, err := New(src, cfg, WithClock(mock), WithMetrics(m))
	require.NoError(t, err)
	defer r.Close()

	slow := &recordingTopology{}
	slow.onDisconnect = func(types.PeerID, error) {
		mock.Add(time.Hour)
	}
	_, err = r.Register(slow)
	require.NoError(t, err)

	require.NoError(t, r.onDisconnect(newMockConn(ctrl, "c1", "peer-a"), nil))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.slowHandlers))
}

// ============================================================================
//                              关闭
// ============================================================================

// TestFanout_AfterClose 关闭后不再收到断开事件
func TestFanout_AfterClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	r, mgr := newTestRegistrar(t)

	topo := &recordingTopology{}
	_, err := r.Register(topo)
	require.NoError(t, err)

	require.NoError(t, r.Close())
	connectAndDrop(mgr, newMockConn(ctrl, "c1", "peer-a"), nil)

	assert.Equal(t, 0, topo.callCount())
	assert.NoError(t, r.onDisconnect(newMockConn(ctrl, "c2", "peer-b"), nil))
	assert.Equal(t, 0, topo.callCount())

	t.Log("✅ 关闭后解绑")
}
