package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"stu-dashboard/backend/internal/model"
	"stu-dashboard/backend/internal/repository"
)

// AbilityService 就业能力评估业务接口
type AbilityService interface {
	GetPersonal(ctx context.Context, stuID interface{}) ([]model.AbilityVector, error)
	GetYearly(ctx context.Context, year interface{}) ([]model.YearlyAbility, error)
}

type abilityService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAbilityService 创建 AbilityService 实例
func NewAbilityService(repo *repository.Repository, logger *zap.Logger) AbilityService {
	return &abilityService{repo: repo, logger: logger}
}

// ────────────────────── GetPersonal ──────────────────────

func (s *abilityService) GetPersonal(ctx context.Context, stuID interface{}) ([]model.AbilityVector, error) {
	rows, err := s.repo.Ability.ListByStudent(ctx, stuID)
	if err != nil {
		s.logger.Error("查询个人能力失败", zap.Any("stu_id", stuID), zap.Error(err))
		return nil, fmt.Errorf("查询个人能力失败: %w", err)
	}
	if rows == nil {
		rows = []model.AbilityVector{}
	}
	return rows, nil
}

// ────────────────────── GetYearly ──────────────────────

func (s *abilityService) GetYearly(ctx context.Context, year interface{}) ([]model.YearlyAbility, error) {
	rows, err := s.repo.Ability.ListByYear(ctx, year)
	if err != nil {
		s.logger.Error("查询年级能力失败", zap.Any("year", year), zap.Error(err))
		return nil, fmt.Errorf("查询年级能力失败: %w", err)
	}
	if rows == nil {
		rows = []model.YearlyAbility{}
	}
	return rows, nil
}
