package dto

import "encoding/json"

// ── 查询请求 ──
// 标识字段不做类型校验，原样作为绑定参数传给 SQL

// Param 请求体中的查询标识
// Present 区分"键缺失"与显式 null：后者照常查询（匹配不到任何行）
type Param struct {
	Present bool
	Value   interface{}
}

// UnmarshalJSON 键出现时被调用，包括值为 null 的情况
func (p *Param) UnmarshalJSON(b []byte) error {
	p.Present = true
	return json.Unmarshal(b, &p.Value)
}

// StudentQueryRequest 按学号查询（成绩 / 个人能力 / 就业预测）
type StudentQueryRequest struct {
	StuID Param `json:"stu_id"`
}

// YearQueryRequest 按年级查询（年级能力）
type YearQueryRequest struct {
	Year Param `json:"year"`
}
