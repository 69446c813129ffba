package model

import "time"

type TestCase struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string    `gorm:"column:name;type:text;not null"`
	ServiceID    uint      `gorm:"column:service_id;not null;index"`
	UserStory    string    `gorm:"column:user_story;type:text;not null;default:''"`
	Gherkin      string    `gorm:"column:gherkin;type:text;not null;default:''"`
	TestData     string    `gorm:"column:test_data;type:text;not null;default:''"`
	Status       string    `gorm:"column:status;type:text;not null;default:'pendente'"`
	IsAutomated  bool      `gorm:"column:is_automated;not null;default:0"`
	Observations string    `gorm:"column:observations;type:text;not null;default:''"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`

	Tests []Test `gorm:"foreignKey:TestCaseID;constraint:OnDelete:SET NULL"`
}

func (TestCase) TableName() string {
	return "test_cases"
}
