package model

import "time"

type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
	Admin   UserRole = "admin"
)

// StudentProfile holds the per-user settings the progress views need. Users
// themselves live with the identity provider.
// swagger:model StudentProfile
type StudentProfile struct {
	UserID      string    `gorm:"primaryKey;size:64" json:"userId"`
	AcademyName string    `gorm:"size:128;index" json:"academyName"`
	Timezone    string    `gorm:"size:64" json:"timezone"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (StudentProfile) TableName() string {
	return "student_profiles"
}
