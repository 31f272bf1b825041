package transferhandler

import (
	"fmt"

	"github.com/pkg/errors"

	workflowhandler "hotel-ops-backend/lib/workflow"
	"hotel-ops-backend/models"
	transferapimodels "hotel-ops-backend/models/api/transfer"
	dbmodels "hotel-ops-backend/models/db"
)

const entityType = models.EntityTypeTransfer

// NewBinding plugs inter-property transfer requests into the workflow engine.
func NewBinding() workflowhandler.DomainBinding {
	return binding{}
}

type binding struct{}

func (binding) EntityType() models.EntityType {
	return entityType
}

func (binding) Validate(payload interface{}) error {
	data, ok := payload.(transferapimodels.TransferRequestData)
	if !ok {
		return errors.Errorf("unexpected payload type %T", payload)
	}
	return data.Validate()
}

func (binding) CreateRecord(s workflowhandler.Stores, propertyID, requesterID string, payload interface{}) (string, string, error) {
	data := payload.(transferapimodels.TransferRequestData)
	rec := dbmodels.TransferRequest{
		BasePropertyModel: dbmodels.BasePropertyModel{
			PropertyID: propertyID,
		},
		EmployeeID:       requesterID,
		TargetPropertyID: data.TargetPropertyID,
		TargetDepartment: data.TargetDepartment,
		EffectiveDate:    data.EffectiveDate,
		Reason:           data.Reason,
	}
	id, err := s.Transfers.Create(rec)
	if err != nil {
		return "", "", err
	}
	title := fmt.Sprintf("Transfer request: %v, effective %v",
		data.TargetDepartment, data.EffectiveDate.Format("2006-01-02"))
	return id, title, nil
}

func (binding) ResolveAssignee(s workflowhandler.Stores, propertyID, requesterID string, status models.RequestStatus) (string, error) {
	return workflowhandler.ResolveStatusAssignee(s, propertyID, requesterID, status)
}
