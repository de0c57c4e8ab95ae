package model

import "testing"

func TestScoreRow_NatureLabel(t *testing.T) {
	tests := []struct {
		name string
		code float64
		want string
	}{
		{"正常考试", 1, ExamNatureNormal},
		{"重考重修", 0.8, ExamNatureRetake},
		{"DECIMAL 扫描误差", 0.8000000000001, ExamNatureRetake},
		{"单精度 FLOAT 列", float64(float32(0.8)), ExamNatureRetake},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := tt.code
			got := ScoreRow{NatureOfExam: &code}.NatureLabel()
			if got == nil {
				t.Fatalf("编码 %v 应有展示标签", tt.code)
			}
			if *got != tt.want {
				t.Errorf("期望 %q，实际 %q", tt.want, *got)
			}
		})
	}
}

func TestScoreRow_NatureLabel_Unknown(t *testing.T) {
	for _, code := range []float64{0, 0.5, 0.79, 2} {
		c := code
		if got := (ScoreRow{NatureOfExam: &c}).NatureLabel(); got != nil {
			t.Errorf("未知编码 %v 不应返回标签，实际 %q", code, *got)
		}
	}
}

func TestScoreRow_NatureLabel_Null(t *testing.T) {
	if got := (ScoreRow{}).NatureLabel(); got != nil {
		t.Errorf("NULL 编码不应返回标签，实际 %q", *got)
	}
}
