package model

// EmploymentPrediction 就业去向预测行：单位性质及其概率，NULL 列保持为 nil
type EmploymentPrediction struct {
	NatureOfUnit *string  `gorm:"column:natureofunit" json:"natureofunit"`
	Possibility  *float64 `gorm:"column:possibility"  json:"possibility"`
}
