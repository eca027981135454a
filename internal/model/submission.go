package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizSubmission 测验提交记录，只追加不修改
// swagger:model QuizSubmission
type QuizSubmission struct {
	ID                   string                      `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID               string                      `gorm:"size:64;index:idx_submission_user_created;not null" json:"userId"`
	CreatedAt            time.Time                   `gorm:"index:idx_submission_user_created" json:"createdAt"`
	Score                int                         `gorm:"not null" json:"score"`
	QuestionIDs          datatypes.JSONSlice[string] `json:"questionIds"`
	IncorrectQuestionIDs datatypes.JSONSlice[string] `json:"incorrectQuestionIds"`
	QuizMode             string                      `gorm:"size:32" json:"quizMode"`
	MainChapter          string                      `gorm:"size:128" json:"mainChapter"`
	SubChapter           string                      `gorm:"size:128" json:"subChapter"`
	AssignmentID         *string                     `gorm:"type:varchar(36);index" json:"assignmentId,omitempty"`
}

func (QuizSubmission) TableName() string {
	return "quiz_submissions"
}

func (s *QuizSubmission) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = GenerateUUID()
	}
	return
}
