package handler

import (
	"github.com/gin-gonic/gin"

	"stu-dashboard/backend/internal/service"
)

// CourseHandler 课程管理 HTTP 处理器
type CourseHandler struct {
	courseSvc service.CourseService
}

// NewCourseHandler 创建 CourseHandler
func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// ListCourses 获取课程与能力对应矩阵
// GET /course_management/course
func (h *CourseHandler) ListCourses(c *gin.Context) (interface{}, error) {
	return h.courseSvc.List(c.Request.Context())
}
