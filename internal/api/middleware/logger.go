package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stu-dashboard/backend/pkg/response"
)

// 探活与指标抓取过于频繁，不记录访问日志
var quietRoutes = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// Logger 访问日志
// 查询失败时 HTTP 仍为 200，按信封 status 与 c.Errors 判断日志级别
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if _, ok := quietRoutes[route]; ok && len(c.Errors) == 0 {
			return
		}

		fields := []zap.Field{
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.String("path", c.Request.URL.Path),
			zap.Int("http_status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		}
		if v, ok := c.Get(response.StatusKey); ok {
			fields = append(fields, zap.Any("envelope_status", v))
		}

		switch {
		case len(c.Errors) > 0:
			fields = append(fields, zap.Strings("errors", c.Errors.Errors()))
			logger.Warn("请求处理失败", fields...)
		case c.Writer.Status() >= 500:
			logger.Error("服务端错误", fields...)
		case c.Writer.Status() >= 400:
			logger.Warn("客户端错误", fields...)
		default:
			logger.Info("请求完成", fields...)
		}
	}
}
