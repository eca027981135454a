package controller

import (
	"errors"
	"quiz_progress_backend/internal/progress"
	"quiz_progress_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the response envelope.
func respondError(ctx *gin.Context, err error) {
	var verr *progress.ValidationError
	switch {
	case errors.As(err, &verr):
		util.BadRequest(ctx, verr.Error())
	case errors.Is(err, util.ErrPlanNotFound),
		errors.Is(err, util.ErrAssignmentNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidScore),
		errors.Is(err, util.ErrInvalidStatus),
		errors.Is(err, util.ErrInvalidTimezone),
		errors.Is(err, util.ErrInvalidState):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}

// currentUserID aborts with 401 when the request carries no claims.
func currentUserID(ctx *gin.Context) (string, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil || claims.UserID == "" {
		util.Unauthorized(ctx)
		return "", false
	}
	return claims.UserID, true
}
