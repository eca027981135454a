package service

import (
	"context"
	"fmt"
	"quiz_progress_backend/internal/model"
	"quiz_progress_backend/internal/progress"
	"quiz_progress_backend/internal/repository"
	"quiz_progress_backend/internal/util"
	"quiz_progress_backend/pkg/logger"
	"quiz_progress_backend/pkg/monitoring"
	"quiz_progress_backend/pkg/tracing"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type AssignmentInput struct {
	AssignmentName  string   `json:"assignmentName" binding:"required,max=255"`
	AcademyName     string   `json:"academyName" binding:"required,max=128"`
	AssignedUnitIDs []string `json:"assignedUnitIds"`
	Week            int      `json:"week" binding:"required,min=1"`
	DueDate         string   `json:"dueDate"`
}

type AssignmentService struct {
	AssignmentRepo  *repository.AssignmentRepository
	SubmissionRepo  *repository.SubmissionRepository
	ProfileService  *ProfileService
	CompletionCache *repository.CompletionCache
	Clock           Clock
}

func NewAssignmentService(
	assignmentRepo *repository.AssignmentRepository,
	submissionRepo *repository.SubmissionRepository,
	profileService *ProfileService,
	cache *repository.CompletionCache,
	clock Clock,
) *AssignmentService {
	if clock == nil {
		clock = SystemClock
	}
	return &AssignmentService{
		AssignmentRepo:  assignmentRepo,
		SubmissionRepo:  submissionRepo,
		ProfileService:  profileService,
		CompletionCache: cache,
		Clock:           clock,
	}
}

// Sequence 返回用户所在学院的作业顺序；没有学院时没有作业
func (s *AssignmentService) Sequence(ctx context.Context, userID string) (seq progress.AssignmentSequence, err error) {
	ctx, span := tracing.StartSpan(ctx, "AssignmentService.Sequence", attribute.String("user.id", userID))
	defer func() {
		tracing.RecordError(span, err)
		span.End()
	}()

	profile, err := s.ProfileService.GetProfile(ctx, userID)
	if err != nil {
		return seq, err
	}
	now := s.Clock.Now().In(s.ProfileService.Location(profile))
	if profile.AcademyName == "" {
		return progress.SequenceAssignments(nil, nil, now), nil
	}

	list, err := s.AssignmentRepo.ListByAcademy(ctx, profile.AcademyName)
	if err != nil {
		return seq, err
	}
	completed, err := s.completedIDs(ctx, userID)
	if err != nil {
		return seq, err
	}

	seq = progress.SequenceAssignments(toEngineAssignments(list, now.Location()), toSet(completed), now)
	span.SetAttributes(attribute.String("assignments.state", string(seq.State)))
	return seq, nil
}

func (s *AssignmentService) completedIDs(ctx context.Context, userID string) ([]string, error) {
	ids, hit, err := s.CompletionCache.Get(ctx, userID)
	if err != nil {
		logger.Log.Warn("read completion cache failed", zap.String("userId", userID), zap.Error(err))
	}
	if hit {
		monitoring.CompletionCacheCounter.WithLabelValues("hit").Inc()
		return ids, nil
	}
	monitoring.CompletionCacheCounter.WithLabelValues("miss").Inc()

	ids, err = s.SubmissionRepo.CompletedAssignmentIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.CompletionCache.Set(ctx, userID, ids); err != nil {
		logger.Log.Warn("write completion cache failed", zap.String("userId", userID), zap.Error(err))
	}
	return ids, nil
}

func (s *AssignmentService) ListByAcademy(ctx context.Context, academyName string) ([]model.AcademyAssignment, error) {
	list, err := s.AssignmentRepo.ListByAcademy(ctx, strings.TrimSpace(academyName))
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []model.AcademyAssignment{}
	}
	return list, nil
}

func (s *AssignmentService) Create(ctx context.Context, creatorID string, in AssignmentInput) (*model.AcademyAssignment, error) {
	a := &model.AcademyAssignment{CreatorID: creatorID}
	if err := applyAssignmentInput(a, in); err != nil {
		return nil, err
	}
	if err := s.AssignmentRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AssignmentService) Update(ctx context.Context, id string, in AssignmentInput) (*model.AcademyAssignment, error) {
	a, err := s.AssignmentRepo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, util.ErrAssignmentNotFound
		}
		return nil, err
	}
	if err := applyAssignmentInput(a, in); err != nil {
		return nil, err
	}
	if err := s.AssignmentRepo.Update(ctx, a); err != nil {
		return nil, err
	}
	return s.AssignmentRepo.FindByID(ctx, id)
}

func (s *AssignmentService) Delete(ctx context.Context, id string) error {
	err := s.AssignmentRepo.Delete(ctx, id)
	if isNotFound(err) {
		return util.ErrAssignmentNotFound
	}
	return err
}

func applyAssignmentInput(a *model.AcademyAssignment, in AssignmentInput) error {
	a.AssignmentName = strings.TrimSpace(in.AssignmentName)
	a.AcademyName = strings.TrimSpace(in.AcademyName)
	a.AssignedUnitIDs = datatypes.JSONSlice[string](nonNil(in.AssignedUnitIDs))
	a.Week = in.Week
	a.DueDate = nil
	if strings.TrimSpace(in.DueDate) != "" {
		day, ok := progress.NormalizeDate(in.DueDate, time.UTC)
		if !ok {
			return &progress.ValidationError{Problems: []string{fmt.Sprintf("dueDate %q is not a date", in.DueDate)}}
		}
		due := datatypes.Date(day)
		a.DueDate = &due
	}
	return nil
}
