package model

// 数值列可能为 NULL，均使用指针以便原样输出 null

// AbilityVector 学生个人十二项能力得分（源列 x1…x12 重命名为 re1…re12）
type AbilityVector struct {
	Re1  *float64 `gorm:"column:re1"  json:"re1"`
	Re2  *float64 `gorm:"column:re2"  json:"re2"`
	Re3  *float64 `gorm:"column:re3"  json:"re3"`
	Re4  *float64 `gorm:"column:re4"  json:"re4"`
	Re5  *float64 `gorm:"column:re5"  json:"re5"`
	Re6  *float64 `gorm:"column:re6"  json:"re6"`
	Re7  *float64 `gorm:"column:re7"  json:"re7"`
	Re8  *float64 `gorm:"column:re8"  json:"re8"`
	Re9  *float64 `gorm:"column:re9"  json:"re9"`
	Re10 *float64 `gorm:"column:re10" json:"re10"`
	Re11 *float64 `gorm:"column:re11" json:"re11"`
	Re12 *float64 `gorm:"column:re12" json:"re12"`
}

// YearlyAbility 某年级十二项能力平均分
type YearlyAbility struct {
	Year    *int     `gorm:"column:year"     json:"year"`
	AvgRe1  *float64 `gorm:"column:avg_re1"  json:"avg_re1"`
	AvgRe2  *float64 `gorm:"column:avg_re2"  json:"avg_re2"`
	AvgRe3  *float64 `gorm:"column:avg_re3"  json:"avg_re3"`
	AvgRe4  *float64 `gorm:"column:avg_re4"  json:"avg_re4"`
	AvgRe5  *float64 `gorm:"column:avg_re5"  json:"avg_re5"`
	AvgRe6  *float64 `gorm:"column:avg_re6"  json:"avg_re6"`
	AvgRe7  *float64 `gorm:"column:avg_re7"  json:"avg_re7"`
	AvgRe8  *float64 `gorm:"column:avg_re8"  json:"avg_re8"`
	AvgRe9  *float64 `gorm:"column:avg_re9"  json:"avg_re9"`
	AvgRe10 *float64 `gorm:"column:avg_re10" json:"avg_re10"`
	AvgRe11 *float64 `gorm:"column:avg_re11" json:"avg_re11"`
	AvgRe12 *float64 `gorm:"column:avg_re12" json:"avg_re12"`
}
