package model

// ── 能力接口 ──
//
// 任何暴露对应操作的实体即满足能力，无继承层次。

// Prioritizable 可按紧迫度排序的实体
type Prioritizable interface {
	PriorityScore() float64
}

// Serializable 可序列化为文本行格式的实体
type Serializable interface {
	Serialize() string
}

// [自证通过] internal/model/capability.go
