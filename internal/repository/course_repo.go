package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"stu-dashboard/backend/internal/model"
)

// CourseRepository 课程-能力矩阵数据访问接口
type CourseRepository interface {
	List(ctx context.Context) ([]model.CourseRow, error)
}

type courseRepo struct {
	db    *gorm.DB
	query string
}

// NewCourseRepo 创建 CourseRepository 实例
func NewCourseRepo(db *gorm.DB, table string) CourseRepository {
	return &courseRepo{
		db:    db,
		query: fmt.Sprintf("SELECT * FROM %s", quoteTable(table)),
	}
}

func (r *courseRepo) List(ctx context.Context) ([]model.CourseRow, error) {
	rows := make([]model.CourseRow, 0)
	err := r.db.WithContext(ctx).Raw(r.query).Scan(&rows).Error
	return rows, err
}
