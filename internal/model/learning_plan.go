package model

import (
	"gorm.io/datatypes"
)

type PlanStatus string

const (
	PlanActive   PlanStatus = "active"
	PlanInactive PlanStatus = "inactive"
)

// LearningPlan 每个用户一份学习计划
// swagger:model LearningPlan
type LearningPlan struct {
	UUIDBase
	UserID      string         `gorm:"size:64;uniqueIndex;not null" json:"userId"`
	StartDate   datatypes.Date `gorm:"not null" json:"startDate"`
	Status      PlanStatus     `gorm:"size:16;default:'active'" json:"status"`
	WeeklyPlans []WeeklyPlan   `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE" json:"weeklyPlans"`
}

func (LearningPlan) TableName() string {
	return "learning_plans"
}

// WeeklyPlan StudyDays: 0 = 周日 .. 6 = 周六
// swagger:model WeeklyPlan
type WeeklyPlan struct {
	ID              uint                        `gorm:"primaryKey;autoIncrement" json:"-"`
	PlanID          string                      `gorm:"type:varchar(36);index;not null" json:"-"`
	Week            int                         `gorm:"not null" json:"week"`
	SessionsPerWeek int                         `gorm:"default:0" json:"sessionsPerWeek"`
	StudyDays       datatypes.JSONSlice[int]    `json:"studyDays"`
	UnitIDs         datatypes.JSONSlice[string] `json:"unitIds"`
	UnitNames       datatypes.JSONSlice[string] `json:"unitNames"`
}

func (WeeklyPlan) TableName() string {
	return "weekly_plans"
}
