package dbmodels

import "time"

type LeaveType string

const (
	LeaveTypeAnnual LeaveType = "annual"
	LeaveTypeSick   LeaveType = "sick"
	LeaveTypeUnpaid LeaveType = "unpaid"
)

func (t LeaveType) IsValid() bool {
	switch t {
	case LeaveTypeAnnual, LeaveTypeSick, LeaveTypeUnpaid:
		return true
	}
	return false
}

type LeaveRequest struct {
	BasePropertyModel
	EmployeeID string    `gorm:"type:varchar(36);index"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID"`
	LeaveType  LeaveType `gorm:"type:varchar(30)"`
	StartDate  time.Time `gorm:"type:date"`
	EndDate    time.Time `gorm:"type:date"`
	TotalDays  int
	Reason     string
}
