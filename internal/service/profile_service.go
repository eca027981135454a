package service

import (
	"context"
	"errors"
	"fmt"
	"quiz_progress_backend/internal/model"
	"quiz_progress_backend/internal/repository"
	"quiz_progress_backend/internal/util"
	"quiz_progress_backend/pkg/logger"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProfileService struct {
	ProfileRepo *repository.ProfileRepository
	defaultLoc  atomic.Pointer[time.Location]
}

func NewProfileService(profileRepo *repository.ProfileRepository, defaultTimezone string) (*ProfileService, error) {
	s := &ProfileService{ProfileRepo: profileRepo}
	if err := s.SetDefaultTimezone(defaultTimezone); err != nil {
		return nil, err
	}
	return s, nil
}

// SetDefaultTimezone changes the zone used for students without one; safe to
// call while requests are served.
func (s *ProfileService) SetDefaultTimezone(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("%w: %s", util.ErrInvalidTimezone, name)
	}
	s.defaultLoc.Store(loc)
	return nil
}

func (s *ProfileService) DefaultLocation() *time.Location {
	if loc := s.defaultLoc.Load(); loc != nil {
		return loc
	}
	return time.UTC
}

// GetProfile 未设置过资料的用户返回空资料
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*model.StudentProfile, error) {
	p, err := s.ProfileRepo.FindByUserID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.StudentProfile{UserID: userID}, nil
	}
	return p, err
}

func (s *ProfileService) UpdateProfile(ctx context.Context, userID, academyName, timezone string) (*model.StudentProfile, error) {
	timezone = strings.TrimSpace(timezone)
	if timezone != "" {
		if _, err := time.LoadLocation(timezone); err != nil {
			return nil, fmt.Errorf("%w: %s", util.ErrInvalidTimezone, timezone)
		}
	}
	p := &model.StudentProfile{
		UserID:      userID,
		AcademyName: strings.TrimSpace(academyName),
		Timezone:    timezone,
	}
	if err := s.ProfileRepo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}

// Location 用户所在时区，决定“今天”是哪一天
func (s *ProfileService) Location(p *model.StudentProfile) *time.Location {
	if p == nil || p.Timezone == "" {
		return s.DefaultLocation()
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		logger.Log.Warn("stored timezone is invalid, using default",
			zap.String("userId", p.UserID), zap.String("timezone", p.Timezone))
		return s.DefaultLocation()
	}
	return loc
}
