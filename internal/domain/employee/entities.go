package employee

import "errors"

var (
	ErrNotFound = errors.New("employee not found")
)

// Table: employee. Reporting lines form a forest; a nil ReportingManager is a root.
type Employee struct {
	StaffID          int64  `gorm:"column:staff_id;primaryKey;autoIncrement:false" json:"staff_id"`
	StaffFName       string `gorm:"column:staff_fname;size:50;not null" json:"staff_fname"`
	StaffLName       string `gorm:"column:staff_lname;size:50;not null" json:"staff_lname"`
	Dept             string `gorm:"column:dept;size:50;not null" json:"dept"`
	Position         string `gorm:"column:position;size:50;not null" json:"position"`
	Country          string `gorm:"column:country;size:50;not null" json:"country"`
	Email            string `gorm:"column:email;size:50;not null" json:"email"`
	ReportingManager *int64 `gorm:"column:reporting_manager;index" json:"reporting_manager"`
	Role             int    `gorm:"column:role;not null" json:"role"`

	Manager *Employee `gorm:"foreignKey:ReportingManager;references:StaffID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}

func (Employee) TableName() string { return "employee" }

func (e Employee) FullName() string { return e.StaffFName + " " + e.StaffLName }
