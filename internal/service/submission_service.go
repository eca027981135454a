package service

import (
	"context"
	"quiz_progress_backend/internal/model"
	"quiz_progress_backend/internal/repository"
	"quiz_progress_backend/internal/util"
	"quiz_progress_backend/pkg/logger"
	"quiz_progress_backend/pkg/monitoring"
	"strings"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type SubmissionInput struct {
	Score                *int     `json:"score" binding:"required"`
	QuestionIDs          []string `json:"questionIds"`
	IncorrectQuestionIDs []string `json:"incorrectQuestionIds"`
	QuizMode             string   `json:"quizMode" binding:"max=32"`
	MainChapter          string   `json:"mainChapter" binding:"max=128"`
	SubChapter           string   `json:"subChapter" binding:"max=128"`
	AssignmentID         string   `json:"assignmentId"`
}

type SubmissionService struct {
	SubmissionRepo  *repository.SubmissionRepository
	AssignmentRepo  *repository.AssignmentRepository
	CompletionCache *repository.CompletionCache
	Clock           Clock
}

func NewSubmissionService(
	submissionRepo *repository.SubmissionRepository,
	assignmentRepo *repository.AssignmentRepository,
	cache *repository.CompletionCache,
	clock Clock,
) *SubmissionService {
	if clock == nil {
		clock = SystemClock
	}
	return &SubmissionService{
		SubmissionRepo:  submissionRepo,
		AssignmentRepo:  assignmentRepo,
		CompletionCache: cache,
		Clock:           clock,
	}
}

// Record 保存一次完成的测验
func (s *SubmissionService) Record(ctx context.Context, userID string, in SubmissionInput) (*model.QuizSubmission, error) {
	if in.Score == nil || *in.Score < 0 || *in.Score > 100 {
		return nil, util.ErrInvalidScore
	}

	sub := &model.QuizSubmission{
		UserID:               userID,
		CreatedAt:            s.Clock.Now(),
		Score:                *in.Score,
		QuestionIDs:          datatypes.JSONSlice[string](nonNil(in.QuestionIDs)),
		IncorrectQuestionIDs: datatypes.JSONSlice[string](nonNil(in.IncorrectQuestionIDs)),
		QuizMode:             in.QuizMode,
		MainChapter:          in.MainChapter,
		SubChapter:           in.SubChapter,
	}

	kind := "practice"
	if id := strings.TrimSpace(in.AssignmentID); id != "" {
		if _, err := s.AssignmentRepo.FindByID(ctx, id); err != nil {
			if isNotFound(err) {
				return nil, util.ErrAssignmentNotFound
			}
			return nil, err
		}
		sub.AssignmentID = &id
		kind = "assignment"
	}

	if err := s.SubmissionRepo.Create(ctx, sub); err != nil {
		return nil, err
	}
	monitoring.SubmissionCounter.WithLabelValues(kind).Inc()

	if sub.AssignmentID != nil {
		if err := s.CompletionCache.Add(ctx, userID, *sub.AssignmentID); err != nil {
			logger.Log.Warn("update completion cache failed", zap.String("userId", userID), zap.Error(err))
			// 写不进去就丢掉整个 key，避免留下缺少新ID的集合
			_ = s.CompletionCache.Invalidate(ctx, userID)
		}
	}
	return sub, nil
}

func (s *SubmissionService) List(ctx context.Context, userID string, page, limit int) (util.PageResponse, error) {
	subs, total, err := s.SubmissionRepo.ListByUser(ctx, userID, page, limit)
	if err != nil {
		return util.PageResponse{}, err
	}
	if subs == nil {
		subs = []model.QuizSubmission{}
	}
	return util.NewPageResponse(subs, total, page, limit), nil
}
