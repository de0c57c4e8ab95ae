package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"stu-dashboard/backend/internal/model"
)

// ScoreRepository 成绩数据访问接口
type ScoreRepository interface {
	ListByStudent(ctx context.Context, stuID interface{}) ([]model.ScoreRow, error)
}

type scoreRepo struct {
	db    *gorm.DB
	query string
}

// NewScoreRepo 创建 ScoreRepository 实例
func NewScoreRepo(db *gorm.DB, table string) ScoreRepository {
	return &scoreRepo{
		db: db,
		query: fmt.Sprintf(
			"SELECT coursename, natureofexam, credit, score FROM %s WHERE stu_id = ?",
			quoteTable(table),
		),
	}
}

func (r *scoreRepo) ListByStudent(ctx context.Context, stuID interface{}) ([]model.ScoreRow, error) {
	rows := make([]model.ScoreRow, 0)
	err := r.db.WithContext(ctx).Raw(r.query, stuID).Scan(&rows).Error
	return rows, err
}
