package model

import "time"

// Test is an execution record, not a specification; the behavioral
// specification lives on TestCase.
type Test struct {
	ID                uint       `gorm:"column:id;primaryKey;autoIncrement"`
	Name              string     `gorm:"column:name;type:text;not null"`
	Description       string     `gorm:"column:description;type:text;not null;default:''"`
	TestCaseID        *uint      `gorm:"column:test_case_id;index"`
	ServiceID         uint       `gorm:"column:service_id;not null;index"`
	Type              string     `gorm:"column:type;type:text;not null;default:''"`
	Result            string     `gorm:"column:result;type:text;not null;default:'pendente'"`
	ExecutionDate     *time.Time `gorm:"column:execution_date"`
	ExecutionType     string     `gorm:"column:execution_type;type:text;not null;default:'manual'"`
	ExecutionLocation string     `gorm:"column:execution_location;type:text;not null;default:''"`
	ExecutionMethod   string     `gorm:"column:execution_method;type:text;not null;default:''"`
	TestData          string     `gorm:"column:test_data;type:text;not null;default:''"`
	JiraLink          string     `gorm:"column:jira_link;type:text;not null;default:''"`
	BugLink           string     `gorm:"column:bug_link;type:text;not null;default:''"`
	Evidence          string     `gorm:"column:evidence;type:text;not null;default:''"`
	ResponsibleQA     string     `gorm:"column:responsible_qa;type:text;not null;default:''"`
	ResponsibleDev    string     `gorm:"column:responsible_dev;type:text;not null;default:''"`
	CreatedAt         time.Time  `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt         time.Time  `gorm:"column:updated_at;not null;autoUpdateTime"`

	Bugs []Bug `gorm:"foreignKey:TestID;constraint:OnDelete:SET NULL"`
}

func (Test) TableName() string {
	return "tests"
}
