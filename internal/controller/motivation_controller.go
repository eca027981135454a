package controller

import (
	"quiz_progress_backend/internal/progress"
	"quiz_progress_backend/internal/service"
	"quiz_progress_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MotivationController struct {
	MotivationService *service.MotivationService
}

func NewMotivationController(motivationService *service.MotivationService) *MotivationController {
	return &MotivationController{MotivationService: motivationService}
}

// @Summary 获取所有激励短句模板
// @Description 每种激励状态一条模板（管理员权限）
// @Tags 激励短句
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.MotivationTemplate}
// @Router /admin/motivations [get]
func (c *MotivationController) GetAllTemplates(ctx *gin.Context) {
	templates, err := c.MotivationService.GetAllTemplates(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, templates)
}

// @Summary 获取激励短句模板
// @Tags 激励短句
// @Produce json
// @Security ApiKeyAuth
// @Param state path string true "celebratory | urgency | weekly_success | steady_progress"
// @Success 200 {object} util.Response{data=model.MotivationTemplate}
// @Failure 400 {object} util.Response
// @Router /admin/motivations/{state} [get]
func (c *MotivationController) GetTemplate(ctx *gin.Context) {
	tpl, err := c.MotivationService.GetTemplate(ctx.Request.Context(), progress.MotivationalState(ctx.Param("state")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, tpl)
}

// @Summary 更新激励短句模板
// @Description content 中的 {missed} 会被替换为缺课次数（管理员权限）
// @Tags 激励短句
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param state path string true "激励状态"
// @Param template body object true "{content, isEnabled}"
// @Success 200 {object} util.Response{data=model.MotivationTemplate}
// @Failure 400 {object} util.Response
// @Router /admin/motivations/{state} [put]
func (c *MotivationController) UpdateTemplate(ctx *gin.Context) {
	var req struct {
		Content   string `json:"content" binding:"required,min=5,max=500"`
		IsEnabled *bool  `json:"isEnabled"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ValidationMessage(err))
		return
	}
	enabled := true
	if req.IsEnabled != nil {
		enabled = *req.IsEnabled
	}
	tpl, err := c.MotivationService.UpdateTemplate(ctx.Request.Context(), progress.MotivationalState(ctx.Param("state")), req.Content, enabled)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, tpl)
}
