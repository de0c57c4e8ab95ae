package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"stu-dashboard/backend/internal/model"
)

const (
	personalAbilityColumns = "x1 AS re1, x2 AS re2, x3 AS re3, x4 AS re4, x5 AS re5, x6 AS re6, x7 AS re7, x8 AS re8, x9 AS re9, x10 AS re10, x11 AS re11, x12 AS re12"
	yearlyAbilityColumns   = "year, avg_re1, avg_re2, avg_re3, avg_re4, avg_re5, avg_re6, avg_re7, avg_re8, avg_re9, avg_re10, avg_re11, avg_re12"
)

// AbilityRepository 能力评估数据访问接口
type AbilityRepository interface {
	ListByStudent(ctx context.Context, stuID interface{}) ([]model.AbilityVector, error)
	ListByYear(ctx context.Context, year interface{}) ([]model.YearlyAbility, error)
}

type abilityRepo struct {
	db            *gorm.DB
	personalQuery string
	yearlyQuery   string
}

// NewAbilityRepo 创建 AbilityRepository 实例
// abilityTable 为学生能力表，statisticsTable 为年级统计表/视图
func NewAbilityRepo(db *gorm.DB, abilityTable, statisticsTable string) AbilityRepository {
	return &abilityRepo{
		db: db,
		personalQuery: fmt.Sprintf("SELECT %s FROM %s WHERE stu_id = ?",
			personalAbilityColumns, quoteTable(abilityTable)),
		yearlyQuery: fmt.Sprintf("SELECT %s FROM %s WHERE year = ?",
			yearlyAbilityColumns, quoteTable(statisticsTable)),
	}
}

func (r *abilityRepo) ListByStudent(ctx context.Context, stuID interface{}) ([]model.AbilityVector, error) {
	rows := make([]model.AbilityVector, 0)
	err := r.db.WithContext(ctx).Raw(r.personalQuery, stuID).Scan(&rows).Error
	return rows, err
}

func (r *abilityRepo) ListByYear(ctx context.Context, year interface{}) ([]model.YearlyAbility, error) {
	rows := make([]model.YearlyAbility, 0)
	err := r.db.WithContext(ctx).Raw(r.yearlyQuery, year).Scan(&rows).Error
	return rows, err
}
