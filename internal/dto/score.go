package dto

// ScoreResponse 成绩记录响应，natureofexam 为展示标签，NULL 列输出 null
type ScoreResponse struct {
	CourseName   *string  `json:"coursename"`
	NatureOfExam *string  `json:"natureofexam"`
	Credit       *float64 `json:"credit"`
	Score        *float64 `json:"score"`
}
