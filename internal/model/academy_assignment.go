package model

import "gorm.io/datatypes"

// AcademyAssignment 学院布置的作业，按 Week 排序
// swagger:model AcademyAssignment
type AcademyAssignment struct {
	UUIDBase
	AssignmentName  string                      `gorm:"size:255;not null" json:"assignmentName"`
	AcademyName     string                      `gorm:"size:128;index:idx_academy_week;not null" json:"academyName"`
	AssignedUnitIDs datatypes.JSONSlice[string] `json:"assignedUnitIds"`
	Week            int                         `gorm:"index:idx_academy_week;not null" json:"week"`
	DueDate         *datatypes.Date             `json:"dueDate,omitempty"`
	CreatorID       string                      `gorm:"size:64" json:"creatorId"`
}

func (AcademyAssignment) TableName() string {
	return "academy_assignments"
}
