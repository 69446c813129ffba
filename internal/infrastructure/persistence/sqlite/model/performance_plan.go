package model

import "time"

type PerformancePlan struct {
	ID            uint       `gorm:"column:id;primaryKey;autoIncrement"`
	Name          string     `gorm:"column:name;type:text;not null"`
	Description   string     `gorm:"column:description;type:text;not null;default:''"`
	ServiceID     uint       `gorm:"column:service_id;not null;index"`
	TestType      string     `gorm:"column:test_type;type:text;not null;default:''"`
	TargetMetrics string     `gorm:"column:target_metrics;type:text;not null;default:''"`
	TestData      string     `gorm:"column:test_data;type:text;not null;default:''"`
	ExecutionDate *time.Time `gorm:"column:execution_date"`
	Results       string     `gorm:"column:results;type:text;not null;default:''"`
	Status        string     `gorm:"column:status;type:text;not null;default:'planned'"`
	Observations  string     `gorm:"column:observations;type:text;not null;default:''"`
	StartDate     *time.Time `gorm:"column:start_date"`
	EndDate       *time.Time `gorm:"column:end_date"`
	CreatedAt     time.Time  `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (PerformancePlan) TableName() string {
	return "performance_plans"
}
