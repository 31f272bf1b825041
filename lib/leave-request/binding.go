package leavehandler

import (
	"fmt"

	"github.com/pkg/errors"

	workflowhandler "hotel-ops-backend/lib/workflow"
	"hotel-ops-backend/models"
	leaveapimodels "hotel-ops-backend/models/api/leave"
	dbmodels "hotel-ops-backend/models/db"
)

const entityType = models.EntityTypeLeaveRequest

// NewBinding plugs leave requests into the workflow engine.
func NewBinding() workflowhandler.DomainBinding {
	return binding{}
}

type binding struct{}

func (binding) EntityType() models.EntityType {
	return entityType
}

func (binding) Validate(payload interface{}) error {
	data, ok := payload.(leaveapimodels.LeaveRequestData)
	if !ok {
		return errors.Errorf("unexpected payload type %T", payload)
	}
	return data.Validate()
}

func (binding) CreateRecord(s workflowhandler.Stores, propertyID, requesterID string, payload interface{}) (string, string, error) {
	data := payload.(leaveapimodels.LeaveRequestData)
	rec := dbmodels.LeaveRequest{
		BasePropertyModel: dbmodels.BasePropertyModel{
			PropertyID: propertyID,
		},
		EmployeeID: requesterID,
		LeaveType:  data.LeaveType,
		StartDate:  data.StartDate,
		EndDate:    data.EndDate,
		TotalDays:  data.TotalDays(),
		Reason:     data.Reason,
	}
	id, err := s.Leave.Create(rec)
	if err != nil {
		return "", "", err
	}
	title := fmt.Sprintf("Leave request: %v, %v days", data.LeaveType, data.TotalDays())
	return id, title, nil
}

func (binding) ResolveAssignee(s workflowhandler.Stores, propertyID, requesterID string, status models.RequestStatus) (string, error) {
	return workflowhandler.ResolveStatusAssignee(s, propertyID, requesterID, status)
}
