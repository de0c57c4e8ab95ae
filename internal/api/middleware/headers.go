package middleware

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDKey gin.Context 中保存请求追踪 ID 的键
	RequestIDKey = "request_id"
	// RequestIDHeader 请求/响应中携带追踪 ID 的头
	RequestIDHeader = "X-Request-ID"
)

// 外部传入的追踪 ID 只接受可安全写入日志的字符
var requestIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// RequestID 沿用上游网关的追踪 ID，不合法时重新生成
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if !requestIDPattern.MatchString(rid) {
			rid = uuid.NewString()
		}

		c.Set(RequestIDKey, rid)
		c.Header(RequestIDHeader, rid)
		c.Next()
	}
}

// ResponseHeaders 看板接口只返回 JSON 与 xlsx
// 查询结果随数据侧更新而变化，禁止缓存；菜单数据不变，允许客户端缓存
func ResponseHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if strings.HasPrefix(c.Request.URL.Path, "/mock/") {
			h.Set("Cache-Control", "public, max-age=300")
		} else {
			h.Set("Cache-Control", "no-store")
		}

		c.Next()
	}
}
