package controller

import (
	"quiz_progress_backend/internal/service"
	"quiz_progress_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	SubmissionService *service.SubmissionService
}

func NewSubmissionController(submissionService *service.SubmissionService) *SubmissionController {
	return &SubmissionController{SubmissionService: submissionService}
}

// @Summary 提交测验结果
// @Description 记录一次完成的测验，带 assignmentId 时同时完成对应作业
// @Tags 测验
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param submission body service.SubmissionInput true "测验结果"
// @Success 201 {object} util.Response{data=model.QuizSubmission}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /submissions [post]
func (c *SubmissionController) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req service.SubmissionInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ValidationMessage(err))
		return
	}
	sub, err := c.SubmissionService.Record(ctx.Request.Context(), userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, sub)
}

// @Summary 我的测验记录
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "页码"
// @Param limit query int false "每页数量"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /submissions [get]
func (c *SubmissionController) List(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	page, limit := util.ParsePage(ctx.Query("page"), ctx.Query("limit"))
	result, err := c.SubmissionService.List(ctx.Request.Context(), userID, page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
