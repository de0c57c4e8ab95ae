package handler

import (
	"github.com/gin-gonic/gin"

	"stu-dashboard/backend/internal/service"
)

// EmploymentHandler 就业去向预测 HTTP 处理器
type EmploymentHandler struct {
	employmentSvc service.EmploymentService
}

// NewEmploymentHandler 创建 EmploymentHandler
func NewEmploymentHandler(employmentSvc service.EmploymentService) *EmploymentHandler {
	return &EmploymentHandler{employmentSvc: employmentSvc}
}

// GetPrediction 获取个人就业去向预测数据
// POST /employment_management/employment_prediction/employment
func (h *EmploymentHandler) GetPrediction(c *gin.Context) (interface{}, error) {
	stuID, err := bindStudentID(c)
	if err != nil {
		return nil, err
	}
	return h.employmentSvc.GetPrediction(c.Request.Context(), stuID)
}
