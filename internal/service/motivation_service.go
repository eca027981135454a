package service

import (
	"context"
	"errors"
	"quiz_progress_backend/internal/model"
	"quiz_progress_backend/internal/progress"
	"quiz_progress_backend/internal/repository"
	"quiz_progress_backend/internal/util"
	"quiz_progress_backend/pkg/logger"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MotivationService struct {
	MotivationRepo *repository.MotivationRepository
}

func NewMotivationService(motivationRepo *repository.MotivationRepository) *MotivationService {
	return &MotivationService{MotivationRepo: motivationRepo}
}

func (s *MotivationService) GetAllTemplates(ctx context.Context) ([]*model.MotivationTemplate, error) {
	return s.MotivationRepo.GetAll(ctx)
}

// GetTemplate 数据库里没有时返回内置默认文案
func (s *MotivationService) GetTemplate(ctx context.Context, state progress.MotivationalState) (*model.MotivationTemplate, error) {
	if !state.Valid() {
		return nil, util.ErrInvalidState
	}
	tpl, err := s.MotivationRepo.GetByState(ctx, string(state))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.MotivationTemplate{
			State:     string(state),
			Content:   progress.DefaultMessages[state],
			IsEnabled: true,
		}, nil
	}
	return tpl, err
}

func (s *MotivationService) UpdateTemplate(ctx context.Context, state progress.MotivationalState, content string, isEnabled bool) (*model.MotivationTemplate, error) {
	if !state.Valid() {
		return nil, util.ErrInvalidState
	}
	tpl := &model.MotivationTemplate{
		State:     string(state),
		Content:   strings.TrimSpace(content),
		IsEnabled: isEnabled,
	}
	if err := s.MotivationRepo.Save(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

// Render 使用启用的模板渲染激励短句；模板缺失、停用或读取失败时使用默认文案
func (s *MotivationService) Render(ctx context.Context, m progress.Motivation) string {
	tpl, err := s.MotivationRepo.GetByState(ctx, string(m.State))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Log.Warn("load motivation template failed", zap.String("state", string(m.State)), zap.Error(err))
		}
		return m.Render("")
	}
	if !tpl.IsEnabled {
		return m.Render("")
	}
	return m.Render(tpl.Content)
}
