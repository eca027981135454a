package repository

import (
	"context"
	"errors"
	"quiz_progress_backend/internal/model"

	"gorm.io/gorm"
)

// PlanRepository 学习计划数据访问，每个用户最多一条
type PlanRepository struct {
	DB *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{DB: db}
}

// FindByUserID 返回计划及按周排序的周计划；不存在时返回 gorm.ErrRecordNotFound
func (r *PlanRepository) FindByUserID(ctx context.Context, userID string) (*model.LearningPlan, error) {
	var plan model.LearningPlan
	err := r.DB.WithContext(ctx).
		Preload("WeeklyPlans", func(db *gorm.DB) *gorm.DB {
			return db.Order("week ASC")
		}).
		Where("user_id = ?", userID).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// Upsert 替换用户的整份计划，周计划整体重建
func (r *PlanRepository) Upsert(ctx context.Context, plan *model.LearningPlan) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.LearningPlan
		err := tx.Where("user_id = ?", plan.UserID).First(&existing).Error
		switch {
		case err == nil:
			plan.ID = existing.ID
			plan.CreatedAt = existing.CreatedAt
			if err := tx.Omit("WeeklyPlans").Save(plan).Error; err != nil {
				return err
			}
			if err := tx.Where("plan_id = ?", plan.ID).Delete(&model.WeeklyPlan{}).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Omit("WeeklyPlans").Create(plan).Error; err != nil {
				return err
			}
		default:
			return err
		}

		if len(plan.WeeklyPlans) == 0 {
			return nil
		}
		for i := range plan.WeeklyPlans {
			plan.WeeklyPlans[i].ID = 0
			plan.WeeklyPlans[i].PlanID = plan.ID
		}
		return tx.Create(&plan.WeeklyPlans).Error
	})
}

// UpdateStatus 仅修改计划状态
func (r *PlanRepository) UpdateStatus(ctx context.Context, userID string, status model.PlanStatus) error {
	res := r.DB.WithContext(ctx).Model(&model.LearningPlan{}).
		Where("user_id = ?", userID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
