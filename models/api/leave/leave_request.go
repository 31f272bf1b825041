package leaveapimodels

import (
	"time"

	"github.com/pkg/errors"

	dbmodels "hotel-ops-backend/models/db"
)

type LeaveRequestData struct {
	LeaveType dbmodels.LeaveType `json:"leave_type"`
	StartDate time.Time          `json:"start_date"`
	EndDate   time.Time          `json:"end_date"`
	Reason    string             `json:"reason,omitempty"`
}

func (r LeaveRequestData) Validate() error {
	if !r.LeaveType.IsValid() {
		return errors.Errorf("unknown leave type: %v", r.LeaveType)
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return errors.New("start and end dates are required")
	}
	if r.EndDate.Before(r.StartDate) {
		return errors.New("end date is before start date")
	}
	return nil
}

// TotalDays is the inclusive day count of the requested range.
func (r LeaveRequestData) TotalDays() int {
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}

type LeaveRequestView struct {
	ID         string             `json:"id"`
	EmployeeID string             `json:"employee_id"`
	LeaveType  dbmodels.LeaveType `json:"leave_type"`
	StartDate  time.Time          `json:"start_date"`
	EndDate    time.Time          `json:"end_date"`
	TotalDays  int                `json:"total_days"`
	Reason     string             `json:"reason,omitempty"`
}

func LeaveRequestConvert(rec dbmodels.LeaveRequest) LeaveRequestView {
	return LeaveRequestView{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		LeaveType:  rec.LeaveType,
		StartDate:  rec.StartDate,
		EndDate:    rec.EndDate,
		TotalDays:  rec.TotalDays,
		Reason:     rec.Reason,
	}
}
