// Package interfaces 定义 registrar 的公共接口
//
// 一个接口文件对应一个实现目录：
//   - transport.go  - Connection、Stream（传输层不在本模块范围内，只声明最小能力）
//   - connmgr.go    - ConnNotifier、ConnectionSource、ConnManager → internal/core/connmgr
//   - registrar.go  - Topology、Registrar → internal/core/registrar
//   - eventbus.go   - EventBus → internal/core/eventbus
//
// mocks/ 目录下是 mockgen 生成的测试替身，重新生成：
//
//	go generate ./pkg/interfaces/...
package interfaces
