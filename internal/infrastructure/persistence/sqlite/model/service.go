package model

import "time"

type Service struct {
	ID                 uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Name               string    `gorm:"column:name;type:text;not null"`
	Description        string    `gorm:"column:description;type:text;not null;default:''"`
	Owner              string    `gorm:"column:owner;type:text;not null;default:''"`
	Repository         string    `gorm:"column:repository;type:text;not null;default:''"`
	Documentation      string    `gorm:"column:documentation;type:text;not null;default:''"`
	Status             string    `gorm:"column:status;type:text;not null;default:''"`
	CoveragePercentage int       `gorm:"column:coverage_percentage;not null;default:0"`
	Observations       string    `gorm:"column:observations;type:text;not null;default:''"`
	CreatedAt          time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt          time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`

	// Deleting a service cascades to its dependents; enforced by the
	// store, not by application logic.
	TestCases        []TestCase        `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	Tests            []Test            `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	Bugs             []Bug             `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	Improvements     []Improvement     `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	PerformancePlans []PerformancePlan `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
}

func (Service) TableName() string {
	return "services"
}
