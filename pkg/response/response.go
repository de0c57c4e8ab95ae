package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgerrors "stu-dashboard/backend/pkg/errors"
)

// 信封 status 取值
const (
	StatusFailed  = 0
	StatusSuccess = 1
)

// StatusKey gin.Context 中记录信封 status 的键，供指标中间件读取
const StatusKey = "envelope_status"

// Envelope 统一响应结构 {status, error, data}
// 成功时 error 为空字符串；失败时为错误详情对象，data 为 null
type Envelope struct {
	Status int         `json:"status"`
	Error  interface{} `json:"error"`
	Data   interface{} `json:"data"`
}

// Success 构造成功信封
func Success(data interface{}) Envelope {
	return Envelope{Status: StatusSuccess, Error: "", Data: data}
}

// Failure 构造失败信封
func Failure(err error) Envelope {
	return Envelope{Status: StatusFailed, Error: pkgerrors.ToDetail(err), Data: nil}
}

// ── 写响应 ──

// OK 200 成功信封
func OK(c *gin.Context, data interface{}) {
	c.Set(StatusKey, StatusSuccess)
	c.JSON(http.StatusOK, Success(data))
}

// Raw 200 写入预先序列化好的成功信封
func Raw(c *gin.Context, payload []byte) {
	c.Set(StatusKey, StatusSuccess)
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// Fail 失败信封，HTTP 状态仍为 200，失败只体现在 status 字段
func Fail(c *gin.Context, err error) {
	c.Set(StatusKey, StatusFailed)
	c.JSON(http.StatusOK, Failure(err))
}

// Error 指定 HTTP 状态码的失败信封（限流等中间件使用）
func Error(c *gin.Context, httpStatus int, err error) {
	c.Set(StatusKey, StatusFailed)
	c.JSON(httpStatus, Failure(err))
}
