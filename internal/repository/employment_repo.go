package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"stu-dashboard/backend/internal/model"
)

// EmploymentRepository 就业去向预测数据访问接口
type EmploymentRepository interface {
	ListByStudent(ctx context.Context, stuID interface{}) ([]model.EmploymentPrediction, error)
}

type employmentRepo struct {
	db    *gorm.DB
	query string
}

// NewEmploymentRepo 创建 EmploymentRepository 实例
func NewEmploymentRepo(db *gorm.DB, table string) EmploymentRepository {
	return &employmentRepo{
		db: db,
		query: fmt.Sprintf(
			"SELECT natureofunit, possibility FROM %s WHERE stu_id = ?",
			quoteTable(table),
		),
	}
}

func (r *employmentRepo) ListByStudent(ctx context.Context, stuID interface{}) ([]model.EmploymentPrediction, error) {
	rows := make([]model.EmploymentPrediction, 0)
	err := r.db.WithContext(ctx).Raw(r.query, stuID).Scan(&rows).Error
	return rows, err
}
