package util

import "errors"

var (
	ErrPermissionDenied   = errors.New("permission denied")
	ErrPlanNotFound       = errors.New("learning plan not found")
	ErrInvalidPlan        = errors.New("invalid learning plan")
	ErrInvalidStatus      = errors.New("invalid plan status")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrInvalidScore       = errors.New("score must be between 0 and 100")
	ErrInvalidTimezone    = errors.New("unknown timezone")
	ErrInvalidState       = errors.New("unknown motivational state")
)
