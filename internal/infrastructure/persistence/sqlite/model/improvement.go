package model

import "time"

type Improvement struct {
	ID           uint       `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string     `gorm:"column:name;type:text;not null"`
	Description  string     `gorm:"column:description;type:text;not null;default:''"`
	ServiceID    uint       `gorm:"column:service_id;not null;index"`
	UserStory    string     `gorm:"column:user_story;type:text;not null;default:''"`
	Evidence     string     `gorm:"column:evidence;type:text;not null;default:''"`
	Status       string     `gorm:"column:status;type:text;not null;default:'proposed'"`
	Observations string     `gorm:"column:observations;type:text;not null;default:''"`
	StartDate    *time.Time `gorm:"column:start_date"`
	EndDate      *time.Time `gorm:"column:end_date"`
	CreatedAt    time.Time  `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (Improvement) TableName() string {
	return "improvements"
}
