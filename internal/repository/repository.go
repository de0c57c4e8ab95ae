package repository

import (
	"gorm.io/gorm"

	"stu-dashboard/backend/config"
)

// Repository 所有 Repository 的聚合入口
// 全部为只读查询，共享同一个连接池
type Repository struct {
	Score      ScoreRepository
	Course     CourseRepository
	Ability    AbilityRepository
	Employment EmploymentRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB, tables *config.TablesConfig) *Repository {
	return &Repository{
		Score:      NewScoreRepo(db, tables.Score),
		Course:     NewCourseRepo(db, tables.Course),
		Ability:    NewAbilityRepo(db, tables.Ability, tables.Statistics),
		Employment: NewEmploymentRepo(db, tables.Prediction),
	}
}

// quoteTable 表名已在配置加载时校验为 [A-Za-z0-9_]，此处仅加反引号
func quoteTable(name string) string {
	return "`" + name + "`"
}
