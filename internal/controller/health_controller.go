package controller

import (
	"context"
	"quiz_progress_backend/internal/repository"
	"quiz_progress_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB    *gorm.DB
	Cache *repository.CompletionCache
}

func NewHealthController(db *gorm.DB, cache *repository.CompletionCache) *HealthController {
	return &HealthController{DB: db, Cache: cache}
}

// @Summary 健康检查
// @Description 检查数据库和（已启用时）Redis 状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	// 检查数据库连接
	sqlDB, err := c.DB.DB()
	if err != nil {
		util.InternalServerError(ctx)
		return
	}

	if err := sqlDB.PingContext(pingCtx); err != nil {
		util.ServiceUnavailable(ctx, "Database")
		return
	}

	components := gin.H{"database": "up", "redis": "disabled"}
	if c.Cache != nil && c.Cache.Redis != nil {
		if err := c.Cache.Ping(pingCtx); err != nil {
			util.ServiceUnavailable(ctx, "Redis")
			return
		}
		components["redis"] = "up"
	}

	util.Success(ctx, gin.H{
		"status":     "ok",
		"components": components,
	})
}
