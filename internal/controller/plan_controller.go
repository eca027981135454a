package controller

import (
	"quiz_progress_backend/internal/model"
	"quiz_progress_backend/internal/service"
	"quiz_progress_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PlanController struct {
	PlanService *service.PlanService
}

func NewPlanController(planService *service.PlanService) *PlanController {
	return &PlanController{PlanService: planService}
}

// @Summary 获取学习计划
// @Description 获取当前用户的学习计划及每周安排
// @Tags 学习计划
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.LearningPlan}
// @Failure 404 {object} util.Response
// @Router /learning-plan [get]
func (c *PlanController) GetPlan(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	plan, err := c.PlanService.GetPlan(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, plan)
}

// @Summary 保存学习计划
// @Description 创建或整体替换学习计划，每周课次数由学习日推导
// @Tags 学习计划
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param plan body service.PlanInput true "学习计划"
// @Success 200 {object} util.Response{data=model.LearningPlan}
// @Failure 400 {object} util.Response
// @Router /learning-plan [put]
func (c *PlanController) SavePlan(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req service.PlanInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ValidationMessage(err))
		return
	}
	plan, err := c.PlanService.SavePlan(ctx.Request.Context(), userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, plan)
}

// @Summary 修改学习计划状态
// @Tags 学习计划
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param status body object true "{status: active|inactive}"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /learning-plan/status [patch]
func (c *PlanController) UpdateStatus(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req struct {
		Status model.PlanStatus `json:"status" binding:"required,planstatus"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ValidationMessage(err))
		return
	}
	if err := c.PlanService.UpdateStatus(ctx.Request.Context(), userID, req.Status); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"status": req.Status})
}
