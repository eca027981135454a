package repository

import (
	"context"
	"quiz_progress_backend/internal/model"

	"gorm.io/gorm"
)

// SubmissionRepository 测验提交只追加，没有更新和删除
type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, sub *model.QuizSubmission) error {
	return r.DB.WithContext(ctx).Create(sub).Error
}

// ListByUser 分页，最新的在前
func (r *SubmissionRepository) ListByUser(ctx context.Context, userID string, page, limit int) ([]model.QuizSubmission, int64, error) {
	var (
		subs  []model.QuizSubmission
		total int64
	)
	query := r.DB.WithContext(ctx).Model(&model.QuizSubmission{}).Where("user_id = ?", userID).Session(&gorm.Session{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&subs).Error
	return subs, total, err
}

// ListAllByUser 只取排期需要的列
func (r *SubmissionRepository) ListAllByUser(ctx context.Context, userID string) ([]model.QuizSubmission, error) {
	var subs []model.QuizSubmission
	err := r.DB.WithContext(ctx).
		Select("id", "user_id", "created_at", "assignment_id").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&subs).Error
	return subs, err
}

// CompletedAssignmentIDs 用户提交过的作业ID（去重）
func (r *SubmissionRepository) CompletedAssignmentIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.DB.WithContext(ctx).Model(&model.QuizSubmission{}).
		Where("user_id = ? AND assignment_id IS NOT NULL AND assignment_id <> ''", userID).
		Distinct("assignment_id").
		Pluck("assignment_id", &ids).Error
	return ids, err
}
