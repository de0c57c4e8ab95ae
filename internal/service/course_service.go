package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"stu-dashboard/backend/internal/model"
	"stu-dashboard/backend/internal/repository"
)

// CourseService 课程-能力矩阵业务接口
type CourseService interface {
	List(ctx context.Context) ([]model.CourseRow, error)
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

func (s *courseService) List(ctx context.Context) ([]model.CourseRow, error) {
	rows, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("查询课程能力矩阵失败", zap.Error(err))
		return nil, fmt.Errorf("查询课程能力矩阵失败: %w", err)
	}
	if rows == nil {
		rows = []model.CourseRow{}
	}
	return rows, nil
}
