package model

import "time"

type Bug struct {
	ID             uint       `gorm:"column:id;primaryKey;autoIncrement"`
	Name           string     `gorm:"column:name;type:text;not null"`
	Description    string     `gorm:"column:description;type:text;not null;default:''"`
	TestID         *uint      `gorm:"column:test_id;index"`
	ServiceID      uint       `gorm:"column:service_id;not null;index"`
	UserStory      string     `gorm:"column:user_story;type:text;not null;default:''"`
	Gherkin        string     `gorm:"column:gherkin;type:text;not null;default:''"`
	Evidence       string     `gorm:"column:evidence;type:text;not null;default:''"`
	EvidenceLink   string     `gorm:"column:evidence_link;type:text;not null;default:''"`
	Status         string     `gorm:"column:status;type:text;not null;default:'open';index"`
	Criticality    string     `gorm:"column:criticality;type:text;not null;default:'media'"`
	Risk           string     `gorm:"column:risk;type:text;not null;default:'medio'"`
	Observations   string     `gorm:"column:observations;type:text;not null;default:''"`
	FoundDate      *time.Time `gorm:"column:found_date"`
	ResolvedDate   *time.Time `gorm:"column:resolved_date"`
	RetestedDate   *time.Time `gorm:"column:retested_date"`
	ResponsibleQA  string     `gorm:"column:responsible_qa;type:text;not null;default:''"`
	ResponsibleDev string     `gorm:"column:responsible_dev;type:text;not null;default:''"`
	CreatedAt      time.Time  `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (Bug) TableName() string {
	return "bugs"
}
