package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgerrors "stu-dashboard/backend/pkg/errors"
	"stu-dashboard/backend/pkg/response"
)

// BodyLimit 请求体大小限制
// 声明长度超限时直接返回失败信封；未声明长度的请求在读取时截断，由绑定失败走同一路径
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 || c.Request.Body == nil {
			c.Next()
			return
		}

		if c.Request.ContentLength > maxBytes {
			_ = c.Error(pkgerrors.ErrBodyTooLarge)
			response.Fail(c, pkgerrors.ErrBodyTooLarge)
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
