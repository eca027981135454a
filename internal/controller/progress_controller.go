package controller

import (
	"quiz_progress_backend/internal/service"
	"quiz_progress_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// @Summary 学习进度
// @Description 返回计划展开后的全部课次、状态汇总、每周统计和激励短句；没有计划时 hasPlan 为 false
// @Tags 学习计划
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.ProgressReport}
// @Router /learning-plan/progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	report, err := c.ProgressService.Report(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, report)
}

// @Summary 本周课次
// @Tags 学习计划
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /learning-plan/current-week [get]
func (c *ProgressController) GetCurrentWeek(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	hasPlan, sessions, err := c.ProgressService.CurrentWeek(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"hasPlan": hasPlan, "sessions": sessions})
}
