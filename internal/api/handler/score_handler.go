package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"stu-dashboard/backend/internal/service"
	"stu-dashboard/backend/pkg/response"
)

// ScoreHandler 成绩管理 HTTP 处理器
type ScoreHandler struct {
	scoreSvc service.ScoreService
}

// NewScoreHandler 创建 ScoreHandler
func NewScoreHandler(scoreSvc service.ScoreService) *ScoreHandler {
	return &ScoreHandler{scoreSvc: scoreSvc}
}

// ListScores 获取个人成绩
// POST /score_management/score
func (h *ScoreHandler) ListScores(c *gin.Context) (interface{}, error) {
	stuID, err := bindStudentID(c)
	if err != nil {
		return nil, err
	}
	return h.scoreSvc.List(c.Request.Context(), stuID)
}

// ExportScores 导出个人成绩单（xlsx）
// POST /score_management/score/export
func (h *ScoreHandler) ExportScores(c *gin.Context) {
	stuID, err := bindStudentID(c)
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, err)
		return
	}

	buf, filename, err := h.scoreSvc.Export(c.Request.Context(), stuID)
	if err != nil {
		_ = c.Error(err)
		response.Fail(c, err)
		return
	}

	// 设置下载响应头
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
