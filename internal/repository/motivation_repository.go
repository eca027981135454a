package repository

import (
	"context"
	"errors"
	"quiz_progress_backend/internal/model"

	"gorm.io/gorm"
)

type MotivationRepository struct {
	DB *gorm.DB
}

func NewMotivationRepository(db *gorm.DB) *MotivationRepository {
	return &MotivationRepository{DB: db}
}

// 获取所有激励短句模板
func (r *MotivationRepository) GetAll(ctx context.Context) ([]*model.MotivationTemplate, error) {
	var templates []*model.MotivationTemplate
	err := r.DB.WithContext(ctx).Order("id").Find(&templates).Error
	return templates, err
}

// 获取某个状态的模板
func (r *MotivationRepository) GetByState(ctx context.Context, state string) (*model.MotivationTemplate, error) {
	var tpl model.MotivationTemplate
	if err := r.DB.WithContext(ctx).Where("state = ?", state).First(&tpl).Error; err != nil {
		return nil, err
	}
	return &tpl, nil
}

// 更新模板内容，不存在则创建
func (r *MotivationRepository) Save(ctx context.Context, tpl *model.MotivationTemplate) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.MotivationTemplate
		err := tx.Where("state = ?", tpl.State).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(tpl).Error
		}
		if err != nil {
			return err
		}
		tpl.ID = existing.ID
		tpl.CreatedAt = existing.CreatedAt
		return tx.Model(&existing).Updates(map[string]interface{}{
			"content":    tpl.Content,
			"is_enabled": tpl.IsEnabled,
		}).Error
	})
}
