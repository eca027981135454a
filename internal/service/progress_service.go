package service

import (
	"context"
	"quiz_progress_backend/internal/model"
	"quiz_progress_backend/internal/progress"
	"quiz_progress_backend/internal/repository"
	"quiz_progress_backend/internal/util"
	"quiz_progress_backend/pkg/monitoring"
	"quiz_progress_backend/pkg/tracing"
	"time"

	"go.opentelemetry.io/otel/attribute"
)

// ProgressReport is the engine report plus what the presentation layer needs
// to show it: the plan status, the calendar day used as today and the
// rendered message.
type ProgressReport struct {
	HasPlan   bool                    `json:"hasPlan"`
	Status    model.PlanStatus        `json:"status,omitempty"`
	StartDate string                  `json:"startDate,omitempty"`
	Timezone  string                  `json:"timezone"`
	Today     string                  `json:"today"`
	Sessions  []progress.StudySession `json:"sessions"`
	Summary   *progress.Summary       `json:"summary,omitempty"`
	Message   string                  `json:"message,omitempty"`
}

type ProgressService struct {
	PlanRepo          *repository.PlanRepository
	SubmissionRepo    *repository.SubmissionRepository
	ProfileService    *ProfileService
	MotivationService *MotivationService
	Clock             Clock
}

func NewProgressService(
	planRepo *repository.PlanRepository,
	submissionRepo *repository.SubmissionRepository,
	profileService *ProfileService,
	motivationService *MotivationService,
	clock Clock,
) *ProgressService {
	if clock == nil {
		clock = SystemClock
	}
	return &ProgressService{
		PlanRepo:          planRepo,
		SubmissionRepo:    submissionRepo,
		ProfileService:    profileService,
		MotivationService: motivationService,
		Clock:             clock,
	}
}

// Report evaluates the user's plan against their submissions as of now.
func (s *ProgressService) Report(ctx context.Context, userID string) (report *ProgressReport, err error) {
	ctx, span := tracing.StartSpan(ctx, "ProgressService.Report", attribute.String("user.id", userID))
	defer func() {
		tracing.RecordError(span, err)
		span.End()
	}()
	started := time.Now()

	profile, err := s.ProfileService.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	loc := s.ProfileService.Location(profile)
	now := s.Clock.Now().In(loc)

	report = &ProgressReport{
		Timezone: loc.String(),
		Today:    now.Format(util.DateFormat),
		Sessions: []progress.StudySession{},
	}

	plan, err := s.PlanRepo.FindByUserID(ctx, userID)
	switch {
	case isNotFound(err):
		monitoring.EvaluationCounter.WithLabelValues("no_plan").Inc()
		return report, nil
	case err != nil:
		return nil, err
	}
	report.Status = plan.Status
	report.StartDate = time.Time(plan.StartDate).Format(util.DateFormat)

	subs, err := s.SubmissionRepo.ListAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := progress.Evaluate(toEnginePlan(plan, loc), toEngineSubmissions(subs), now)
	report.HasPlan = result.HasPlan
	report.Sessions = result.Sessions
	report.Summary = result.Summary

	state := "no_plan"
	if result.Summary != nil {
		report.Message = s.MotivationService.Render(ctx, result.Summary.Motivation)
		state = string(result.Summary.Motivation.State)
		span.SetAttributes(
			attribute.Int("progress.sessions", result.Summary.TotalSessions),
			attribute.Int("progress.missed", result.Summary.MissedSessionsCount),
		)
	}
	monitoring.EvaluationCounter.WithLabelValues(state).Inc()
	monitoring.EvaluationDuration.Observe(time.Since(started).Seconds())

	return report, nil
}

// CurrentWeek 只返回本周的学习安排
func (s *ProgressService) CurrentWeek(ctx context.Context, userID string) (bool, []progress.StudySession, error) {
	report, err := s.Report(ctx, userID)
	if err != nil {
		return false, nil, err
	}
	if report.Summary == nil {
		return report.HasPlan, []progress.StudySession{}, nil
	}
	return report.HasPlan, report.Summary.CurrentWeekSessions, nil
}
