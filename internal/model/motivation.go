package model

// MotivationTemplate 激励短句模板，每种状态一条
type MotivationTemplate struct {
	BaseModel
	State     string `gorm:"size:32;uniqueIndex;not null" json:"state"`
	Content   string `gorm:"type:text;not null" json:"content"`
	IsEnabled bool   `gorm:"not null" json:"isEnabled"`
}

func (MotivationTemplate) TableName() string {
	return "motivation_templates"
}
