// Package eventbus 实现事件总线
package eventbus

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	pkgif "github.com/dep2p/go-registrar/pkg/interfaces"
	"github.com/dep2p/go-registrar/pkg/lib/log"
)

var logger = log.Logger("core/eventbus")

// ============================================================================
// 错误定义
// ============================================================================

var (
	// ErrInvalidEventType 无效的事件类型
	ErrInvalidEventType = errors.New("eventbus: invalid event type")
	// ErrNonPointerType 非指针类型
	ErrNonPointerType = errors.New("eventbus: event type must be a pointer")
	// ErrEmitterClosed 发射器已关闭
	ErrEmitterClosed = errors.New("eventbus: emitter closed")
	// ErrWrongEventType 发射的事件与发射器类型不符
	ErrWrongEventType = errors.New("eventbus: event does not match emitter type")
)

// defaultBufSize 默认订阅缓冲区大小
const defaultBufSize = 16

// ============================================================================
// Bus 实现
// ============================================================================

// Bus 事件总线
type Bus struct {
	mu sync.RWMutex

	// topics 事件类型 -> 订阅者列表
	topics map[reflect.Type]*topic
}

// topic 单一事件类型的订阅者集合
type topic struct {
	mu        sync.Mutex
	typ       reflect.Type
	sinks     []*Subscription
	dropCount atomic.Int64 // 慢消费者丢弃计数
}

var _ pkgif.EventBus = (*Bus)(nil)

// NewBus 创建新的事件总线
func NewBus() *Bus {
	return &Bus{
		topics: make(map[reflect.Type]*topic),
	}
}

// Subscribe 订阅事件
//
// eventType 必须是事件类型的指针，例如 new(types.EvtPeerDisconnected)。
func (b *Bus) Subscribe(eventType interface{}, opts ...pkgif.SubscriptionOpt) (pkgif.Subscription, error) {
	typ, err := elemType(eventType)
	if err != nil {
		return nil, err
	}

	settings := &pkgif.SubscriptionSettings{Buffer: defaultBufSize}
	for _, opt := range opts {
		opt(settings)
	}
	if settings.Buffer < 0 {
		settings.Buffer = 0
	}

	sub := &Subscription{
		bus: b,
		typ: typ,
		out: make(chan interface{}, settings.Buffer),
	}

	t := b.topic(typ)
	t.mu.Lock()
	t.sinks = append(t.sinks, sub)
	t.mu.Unlock()

	return sub, nil
}

// Emitter 获取发射器
func (b *Bus) Emitter(eventType interface{}) (pkgif.Emitter, error) {
	typ, err := elemType(eventType)
	if err != nil {
		return nil, err
	}
	return &Emitter{topic: b.topic(typ)}, nil
}

// SubscriberCount 返回指定事件类型的订阅者数量
func (b *Bus) SubscriberCount(eventType interface{}) int {
	typ, err := elemType(eventType)
	if err != nil {
		return 0
	}

	b.mu.RLock()
	t, ok := b.topics[typ]
	b.mu.RUnlock()
	if !ok {
		return 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sinks)
}

// ============================================================================
// 内部方法
// ============================================================================

// elemType 校验并返回事件元素类型
func elemType(eventType interface{}) (reflect.Type, error) {
	if eventType == nil {
		return nil, ErrInvalidEventType
	}
	typ := reflect.TypeOf(eventType)
	if typ.Kind() != reflect.Ptr {
		return nil, ErrNonPointerType
	}
	return typ.Elem(), nil
}

// topic 获取或创建事件类型节点
func (b *Bus) topic(typ reflect.Type) *topic {
	b.mu.RLock()
	t, ok := b.topics[typ]
	b.mu.RUnlock()
	if ok {
		return t
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if t, ok = b.topics[typ]; ok {
		return t
	}
	t = &topic{typ: typ}
	b.topics[typ] = t
	return t
}

// removeSub 移除订阅
func (b *Bus) removeSub(sub *Subscription) {
	b.mu.RLock()
	t, ok := b.topics[sub.typ]
	b.mu.RUnlock()
	if !ok {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for i, s := range t.sinks {
		if s == sub {
			t.sinks = append(t.sinks[:i], t.sinks[i+1:]...)
			break
		}
	}
}

// emit 发射事件到所有订阅者
//
// 不阻塞：订阅者缓冲区满时丢弃事件。
func (t *topic) emit(event interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, sub := range t.sinks {
		select {
		case sub.out <- event:
		default:
			dropped := t.dropCount.Add(1)
			// 每丢弃 100 个事件警告一次，避免日志泛滥
			if dropped%100 == 1 {
				logger.Warn("慢消费者检测",
					"dropped", dropped,
					"type", t.typ.String())
			}
		}
	}
}

// accepts 检查事件是否属于该类型（值或指针均可）
func (t *topic) accepts(event interface{}) bool {
	if event == nil {
		return false
	}
	typ := reflect.TypeOf(event)
	if typ == t.typ {
		return true
	}
	return typ.Kind() == reflect.Ptr && typ.Elem() == t.typ
}
