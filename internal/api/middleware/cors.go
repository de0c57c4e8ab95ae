package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"stu-dashboard/backend/config"
)

// CORS 跨域中间件
// allow_origins 含 "*" 或为空时放行所有来源（此时不允许携带凭证）
func CORS(cfg *config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:  cfg.AllowMethods,
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}

	for _, o := range cfg.AllowOrigins {
		if o == "*" {
			corsCfg.AllowAllOrigins = true
			break
		}
		corsCfg.AllowOrigins = append(corsCfg.AllowOrigins, strings.TrimRight(o, "/"))
	}
	// 未配置来源时同样放行全部
	if corsCfg.AllowAllOrigins || len(corsCfg.AllowOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowOrigins = nil
	} else {
		corsCfg.AllowCredentials = true
	}

	return cors.New(corsCfg)
}
