package handler

import "stu-dashboard/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Score      *ScoreHandler
	Course     *CourseHandler
	Ability    *AbilityHandler
	Employment *EmploymentHandler
	Menu       *MenuHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Score:      NewScoreHandler(svc.Score),
		Course:     NewCourseHandler(svc.Course),
		Ability:    NewAbilityHandler(svc.Ability),
		Employment: NewEmploymentHandler(svc.Employment),
		Menu:       NewMenuHandler(svc.Menu),
	}
}
