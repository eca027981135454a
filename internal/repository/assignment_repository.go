package repository

import (
	"context"
	"quiz_progress_backend/internal/model"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	DB *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

func (r *AssignmentRepository) Create(ctx context.Context, a *model.AcademyAssignment) error {
	return r.DB.WithContext(ctx).Create(a).Error
}

func (r *AssignmentRepository) Update(ctx context.Context, a *model.AcademyAssignment) error {
	return r.DB.WithContext(ctx).Model(&model.AcademyAssignment{}).
		Where("id = ?", a.ID).
		Updates(map[string]interface{}{
			"assignment_name":   a.AssignmentName,
			"academy_name":      a.AcademyName,
			"assigned_unit_ids": a.AssignedUnitIDs,
			"week":              a.Week,
			"due_date":          a.DueDate,
		}).Error
}

func (r *AssignmentRepository) Delete(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&model.AcademyAssignment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AssignmentRepository) FindByID(ctx context.Context, id string) (*model.AcademyAssignment, error) {
	var a model.AcademyAssignment
	if err := r.DB.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// ListByAcademy 按周升序，同周按创建时间
func (r *AssignmentRepository) ListByAcademy(ctx context.Context, academyName string) ([]model.AcademyAssignment, error) {
	var list []model.AcademyAssignment
	err := r.DB.WithContext(ctx).
		Where("academy_name = ?", academyName).
		Order("week ASC").
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}
