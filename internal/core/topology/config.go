package topology

import (
	"fmt"
	"math"

	"github.com/dep2p/go-registrar/pkg/types"
)

// Infinity 表示不限制节点数量
const Infinity = math.MaxInt

// Config 拓扑配置
type Config struct {
	// Min 期望的最少节点数，低于该值时 NeedsPeers 返回 true
	Min int

	// Max 最多跟踪的节点数，0 表示 Infinity
	Max int

	// OnConnect 开始跟踪节点时调用（可选）
	OnConnect func(peer types.PeerID)

	// OnDisconnect 被跟踪的节点断开时调用（可选）
	OnDisconnect func(peer types.PeerID, err error)
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		Min: 0,
		Max: Infinity,
	}
}

// Validate 验证配置
func (c Config) Validate() error {
	if c.Min < 0 {
		return fmt.Errorf("%w: min %d is negative", ErrInvalidConfig, c.Min)
	}
	if c.Max < 0 {
		return fmt.Errorf("%w: max %d is negative", ErrInvalidConfig, c.Max)
	}
	if c.Max != 0 && c.Max < c.Min {
		return fmt.Errorf("%w: max %d is less than min %d", ErrInvalidConfig, c.Max, c.Min)
	}
	return nil
}
