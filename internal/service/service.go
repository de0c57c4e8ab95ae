package service

import (
	"go.uber.org/zap"

	"stu-dashboard/backend/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Score      ScoreService
	Course     CourseService
	Ability    AbilityService
	Employment EmploymentService
	Menu       MenuService
}

// NewService 创建 Service 聚合
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Score:      NewScoreService(repo, logger),
		Course:     NewCourseService(repo, logger),
		Ability:    NewAbilityService(repo, logger),
		Employment: NewEmploymentService(repo, logger),
		Menu:       NewMenuService(),
	}
}
