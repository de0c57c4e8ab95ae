package router

import (
	"context"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"stu-dashboard/backend/config"
	"stu-dashboard/backend/internal/api/handler"
	"stu-dashboard/backend/internal/api/middleware"
	"stu-dashboard/backend/pkg/database"
	"stu-dashboard/backend/pkg/metrics"
	"stu-dashboard/backend/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
// rdb 为 nil 时不启用限流
func Setup(cfg *config.Config, h *handler.Handler, db *gorm.DB, rdb *redis.Client, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(ginzap.RecoveryWithZap(logger, true))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics(m))
	r.Use(middleware.CORS(&cfg.Server.CORS))
	r.Use(middleware.ResponseHeaders())
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// ── 运维端点 ──
	r.GET("/health", healthCheck(db))
	r.GET("/metrics", gin.WrapH(m.Handler()))

	// ── 静态路由/菜单 ──
	mock := r.Group("/mock/app")
	{
		mock.GET("/route/list", h.Menu.ListRoutes)
		mock.GET("/menu/list", h.Menu.ListMenus)
	}

	// ── 查询接口 ──
	api := r.Group("")
	if cfg.RateLimit.Enabled && rdb != nil {
		api.Use(middleware.RateLimit(rdb, cfg.RateLimit.Limit, cfg.RateLimit.Window, logger))
	}
	{
		// 成绩管理
		api.POST("/score_management/score", handler.Query(h.Score.ListScores))
		api.POST("/score_management/score/export", h.Score.ExportScores)

		// 课程管理
		api.GET("/course_management/course", handler.Query(h.Course.ListCourses))

		// 就业管理
		employment := api.Group("/employment_management")
		{
			employment.POST("/ability_evaluation/personal_ability", handler.Query(h.Ability.GetPersonalAbility))
			employment.POST("/ability_evaluation/yearly_ability", handler.Query(h.Ability.GetYearlyAbility))
			employment.POST("/employment_prediction/employment", handler.Query(h.Employment.GetPrediction))
		}
	}

	return r
}

// healthCheck 数据库可达时返回 ok，否则 503
func healthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := database.Ping(ctx, db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
