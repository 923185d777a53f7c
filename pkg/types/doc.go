// Package types 定义 registrar 的公共数据结构
//
// 这是整个系统的最底层包，不依赖任何其他内部包。
// 所有类型都是纯值类型，用于在各模块间传递数据。
//
// # 文件组织
//
//   - ids.go     - PeerID、ProtocolID、RegistrationID
//   - enums.go   - 连接方向等枚举
//   - events.go  - 事件总线上的事件类型
//   - errors.go  - 类型校验错误
package types
