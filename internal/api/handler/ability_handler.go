package handler

import (
	"github.com/gin-gonic/gin"

	"stu-dashboard/backend/internal/service"
)

// AbilityHandler 就业能力评估 HTTP 处理器
type AbilityHandler struct {
	abilitySvc service.AbilityService
}

// NewAbilityHandler 创建 AbilityHandler
func NewAbilityHandler(abilitySvc service.AbilityService) *AbilityHandler {
	return &AbilityHandler{abilitySvc: abilitySvc}
}

// GetPersonalAbility 获取个人能力数据
// POST /employment_management/ability_evaluation/personal_ability
func (h *AbilityHandler) GetPersonalAbility(c *gin.Context) (interface{}, error) {
	stuID, err := bindStudentID(c)
	if err != nil {
		return nil, err
	}
	return h.abilitySvc.GetPersonal(c.Request.Context(), stuID)
}

// GetYearlyAbility 获取年级能力数据
// POST /employment_management/ability_evaluation/yearly_ability
func (h *AbilityHandler) GetYearlyAbility(c *gin.Context) (interface{}, error) {
	year, err := bindYear(c)
	if err != nil {
		return nil, err
	}
	return h.abilitySvc.GetYearly(c.Request.Context(), year)
}
