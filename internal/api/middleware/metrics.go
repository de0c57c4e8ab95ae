package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"stu-dashboard/backend/pkg/metrics"
	"stu-dashboard/backend/pkg/response"
)

// Metrics 请求指标中间件
// outcome 取自响应信封的 status，未写信封的请求记为 none
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		outcome := "none"
		if v, ok := c.Get(response.StatusKey); ok {
			if v == response.StatusSuccess {
				outcome = "success"
			} else {
				outcome = "failed"
			}
		}

		m.Observe(c.Request.Method, route, outcome, time.Since(start).Seconds())
	}
}
