package transferapimodels

import (
	"time"

	"github.com/pkg/errors"

	dbmodels "hotel-ops-backend/models/db"
)

type TransferRequestData struct {
	TargetPropertyID string    `json:"target_property_id"`
	TargetDepartment string    `json:"target_department"`
	EffectiveDate    time.Time `json:"effective_date"`
	Reason           string    `json:"reason,omitempty"`
}

func (r TransferRequestData) Validate() error {
	if r.TargetPropertyID == "" {
		return errors.New("target property is required")
	}
	if r.TargetDepartment == "" {
		return errors.New("target department is required")
	}
	if r.EffectiveDate.IsZero() {
		return errors.New("effective date is required")
	}
	return nil
}

type TransferRequestView struct {
	ID               string    `json:"id"`
	EmployeeID       string    `json:"employee_id"`
	TargetPropertyID string    `json:"target_property_id"`
	TargetDepartment string    `json:"target_department"`
	EffectiveDate    time.Time `json:"effective_date"`
	Reason           string    `json:"reason,omitempty"`
}

func TransferRequestConvert(rec dbmodels.TransferRequest) TransferRequestView {
	return TransferRequestView{
		ID:               rec.ID,
		EmployeeID:       rec.EmployeeID,
		TargetPropertyID: rec.TargetPropertyID,
		TargetDepartment: rec.TargetDepartment,
		EffectiveDate:    rec.EffectiveDate,
		Reason:           rec.Reason,
	}
}
