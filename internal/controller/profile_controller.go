package controller

import (
	"quiz_progress_backend/internal/service"
	"quiz_progress_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	ProfileService *service.ProfileService
}

func NewProfileController(profileService *service.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

// @Summary 获取学习资料
// @Tags 用户
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.StudentProfile}
// @Router /profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	p, err := c.ProfileService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, p)
}

// @Summary 更新学习资料
// @Description 设置所属学院和时区（IANA 名称，留空使用默认时区）
// @Tags 用户
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param profile body object true "{academyName, timezone}"
// @Success 200 {object} util.Response{data=model.StudentProfile}
// @Failure 400 {object} util.Response
// @Router /profile [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	var req struct {
		AcademyName string `json:"academyName" binding:"max=128"`
		Timezone    string `json:"timezone" binding:"omitempty,timezone"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ValidationMessage(err))
		return
	}
	p, err := c.ProfileService.UpdateProfile(ctx.Request.Context(), userID, req.AcademyName, req.Timezone)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, p)
}
