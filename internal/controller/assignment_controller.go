package controller

import (
	"quiz_progress_backend/internal/service"
	"quiz_progress_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssignmentController struct {
	AssignmentService *service.AssignmentService
}

func NewAssignmentController(assignmentService *service.AssignmentService) *AssignmentController {
	return &AssignmentController{AssignmentService: assignmentService}
}

// @Summary 我的作业顺序
// @Description 按周排列学院作业，只有下一项可以开始
// @Tags 作业
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=progress.AssignmentSequence}
// @Router /assignments [get]
func (c *AssignmentController) GetSequence(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	seq, err := c.AssignmentService.Sequence(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, seq)
}

// @Summary 学院作业列表
// @Tags 作业管理
// @Produce json
// @Security ApiKeyAuth
// @Param academyName query string true "学院名称"
// @Success 200 {object} util.Response{data=[]model.AcademyAssignment}
// @Failure 400 {object} util.Response
// @Router /teacher/assignments [get]
func (c *AssignmentController) List(ctx *gin.Context) {
	academy := ctx.Query("academyName")
	if academy == "" {
		util.BadRequest(ctx, "academyName is required")
		return
	}
	list, err := c.AssignmentService.ListByAcademy(ctx.Request.Context(), academy)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// @Summary 创建作业
// @Tags 作业管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param assignment body service.AssignmentInput true "作业"
// @Success 201 {object} util.Response{data=model.AcademyAssignment}
// @Failure 400 {object} util.Response
// @Router /teacher/assignments [post]
func (c *AssignmentController) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req service.AssignmentInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ValidationMessage(err))
		return
	}
	a, err := c.AssignmentService.Create(ctx.Request.Context(), userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, a)
}

// @Summary 修改作业
// @Tags 作业管理
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "作业ID"
// @Param assignment body service.AssignmentInput true "作业"
// @Success 200 {object} util.Response{data=model.AcademyAssignment}
// @Failure 404 {object} util.Response
// @Router /teacher/assignments/{id} [put]
func (c *AssignmentController) Update(ctx *gin.Context) {
	var req service.AssignmentInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ValidationMessage(err))
		return
	}
	a, err := c.AssignmentService.Update(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, a)
}

// @Summary 删除作业
// @Tags 作业管理
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "作业ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /teacher/assignments/{id} [delete]
func (c *AssignmentController) Delete(ctx *gin.Context) {
	if err := c.AssignmentService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
