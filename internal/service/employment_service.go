package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"stu-dashboard/backend/internal/model"
	"stu-dashboard/backend/internal/repository"
)

// EmploymentService 就业去向预测业务接口
type EmploymentService interface {
	GetPrediction(ctx context.Context, stuID interface{}) ([]model.EmploymentPrediction, error)
}

type employmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEmploymentService 创建 EmploymentService 实例
func NewEmploymentService(repo *repository.Repository, logger *zap.Logger) EmploymentService {
	return &employmentService{repo: repo, logger: logger}
}

func (s *employmentService) GetPrediction(ctx context.Context, stuID interface{}) ([]model.EmploymentPrediction, error) {
	rows, err := s.repo.Employment.ListByStudent(ctx, stuID)
	if err != nil {
		s.logger.Error("查询就业去向预测失败", zap.Any("stu_id", stuID), zap.Error(err))
		return nil, fmt.Errorf("查询就业去向预测失败: %w", err)
	}
	if rows == nil {
		rows = []model.EmploymentPrediction{}
	}
	return rows, nil
}
