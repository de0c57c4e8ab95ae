package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"stu-dashboard/backend/internal/dto"
	pkgerrors "stu-dashboard/backend/pkg/errors"
)

// bindStudentID 读取请求体中的 stu_id，不校验类型；显式 null 原样透传
func bindStudentID(c *gin.Context) (interface{}, error) {
	var req dto.StudentQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, fmt.Errorf("解析请求体失败: %w", err)
	}
	if !req.StuID.Present {
		return nil, fmt.Errorf("%w: stu_id", pkgerrors.ErrMissingParam)
	}
	return req.StuID.Value, nil
}

// bindYear 读取请求体中的 year，非数字也原样透传
func bindYear(c *gin.Context) (interface{}, error) {
	var req dto.YearQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, fmt.Errorf("解析请求体失败: %w", err)
	}
	if !req.Year.Present {
		return nil, fmt.Errorf("%w: year", pkgerrors.ErrMissingParam)
	}
	return req.Year.Value, nil
}
