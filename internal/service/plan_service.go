package service

import (
	"context"
	"errors"
	"fmt"
	"quiz_progress_backend/internal/model"
	"quiz_progress_backend/internal/progress"
	"quiz_progress_backend/internal/repository"
	"quiz_progress_backend/internal/util"
	"sort"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WeeklyPlanInput is one week of the setup flow. sessionsPerWeek is always
// derived from studyDays, so it is not accepted here.
type WeeklyPlanInput struct {
	Week      int      `json:"week" binding:"required,min=1"`
	StudyDays []int    `json:"studyDays" binding:"studydays"`
	UnitIDs   []string `json:"unitIds"`
	UnitNames []string `json:"unitNames"`
}

type PlanInput struct {
	StartDate   string            `json:"startDate" binding:"required"`
	Status      model.PlanStatus  `json:"status" binding:"omitempty,planstatus"`
	WeeklyPlans []WeeklyPlanInput `json:"weeklyPlans" binding:"required,min=1,dive"`
}

type PlanService struct {
	PlanRepo *repository.PlanRepository
}

func NewPlanService(planRepo *repository.PlanRepository) *PlanService {
	return &PlanService{PlanRepo: planRepo}
}

func (s *PlanService) GetPlan(ctx context.Context, userID string) (*model.LearningPlan, error) {
	plan, err := s.PlanRepo.FindByUserID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrPlanNotFound
	}
	return plan, err
}

// SavePlan validates the setup input and replaces the user's plan.
func (s *PlanService) SavePlan(ctx context.Context, userID string, in PlanInput) (*model.LearningPlan, error) {
	start, ok := progress.NormalizeDate(in.StartDate, time.UTC)
	if !ok {
		verr := &progress.ValidationError{Problems: []string{fmt.Sprintf("startDate %q is not a date", in.StartDate)}}
		return nil, fmt.Errorf("%w: %w", util.ErrInvalidPlan, verr)
	}

	inputs := append([]WeeklyPlanInput(nil), in.WeeklyPlans...)
	sort.SliceStable(inputs, func(i, j int) bool { return inputs[i].Week < inputs[j].Week })

	candidate := progress.Plan{StartDate: start}
	for _, w := range inputs {
		candidate.Weeks = append(candidate.Weeks, progress.WeeklyPlan{
			Week:            w.Week,
			SessionsPerWeek: len(w.StudyDays),
			StudyDays:       w.StudyDays,
		})
	}
	if err := candidate.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", util.ErrInvalidPlan, err)
	}

	status := in.Status
	if status == "" {
		status = model.PlanActive
	}

	plan := &model.LearningPlan{
		UserID:    userID,
		StartDate: datatypes.Date(start),
		Status:    status,
	}
	for _, w := range inputs {
		days := progress.NormalizeStudyDays(w.StudyDays)
		plan.WeeklyPlans = append(plan.WeeklyPlans, model.WeeklyPlan{
			Week:            w.Week,
			SessionsPerWeek: len(days),
			StudyDays:       datatypes.JSONSlice[int](days),
			UnitIDs:         datatypes.JSONSlice[string](nonNil(w.UnitIDs)),
			UnitNames:       datatypes.JSONSlice[string](nonNil(w.UnitNames)),
		})
	}

	if err := s.PlanRepo.Upsert(ctx, plan); err != nil {
		return nil, err
	}
	return s.GetPlan(ctx, userID)
}

func (s *PlanService) UpdateStatus(ctx context.Context, userID string, status model.PlanStatus) error {
	if status != model.PlanActive && status != model.PlanInactive {
		return util.ErrInvalidStatus
	}
	err := s.PlanRepo.UpdateStatus(ctx, userID, status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrPlanNotFound
	}
	return err
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
