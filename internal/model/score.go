package model

import "math"

// 考试性质展示标签
const (
	ExamNatureNormal = "normal exam"     // natureofexam = 1
	ExamNatureRetake = "retake/re-study" // natureofexam = 0.8
)

// ScoreRow 成绩表查询行，natureofexam 为原始数值编码
// 各列均可能为 NULL
type ScoreRow struct {
	CourseName   *string  `gorm:"column:coursename"`
	NatureOfExam *float64 `gorm:"column:natureofexam"`
	Credit       *float64 `gorm:"column:credit"`
	Score        *float64 `gorm:"column:score"`
}

// NatureLabel 将考试性质编码转换为展示标签，NULL 或未知编码返回 nil
func (r ScoreRow) NatureLabel() *string {
	if r.NatureOfExam == nil {
		return nil
	}

	var label string
	switch code := *r.NatureOfExam; {
	case nearlyEqual(code, 1):
		label = ExamNatureNormal
	case nearlyEqual(code, 0.8):
		label = ExamNatureRetake
	default:
		return nil
	}
	return &label
}

// 单精度 FLOAT 列中的 0.8 扫描为 0.800000011920929，误差约 1.2e-8
func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
