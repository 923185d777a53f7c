package eventbus

import (
	"testing"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	pkgif "github.com/dep2p/go-registrar/pkg/interfaces"
)

// ============================================================================
// Fx 模块测试
// ============================================================================

// TestModule_Load 测试 Fx 模块加载
func TestModule_Load(t *testing.T) {
	var loadedBus pkgif.EventBus

	app := fxtest.New(t,
		Module(),
		fx.Populate(&loadedBus),
	)
	defer app.RequireStart().RequireStop()

	if loadedBus == nil {
		t.Fatal("EventBus not injected by Fx")
	}
	if _, ok := loadedBus.(*Bus); !ok {
		t.Errorf("EventBus type = %T, want *Bus", loadedBus)
	}
}

// TestModule_Provides 测试模块提供的类型
func TestModule_Provides(t *testing.T) {
	result := ProvideEventBus()

	if result.EventBus == nil {
		t.Error("ProvideEventBus() did not provide EventBus")
	}
}
