package documenthandler

import (
	"fmt"

	"github.com/pkg/errors"

	workflowhandler "hotel-ops-backend/lib/workflow"
	"hotel-ops-backend/models"
	documentapimodels "hotel-ops-backend/models/api/document"
	dbmodels "hotel-ops-backend/models/db"
)

const entityType = models.EntityTypeDocumentChange

// NewBinding plugs personnel document changes into the workflow engine.
func NewBinding() workflowhandler.DomainBinding {
	return binding{}
}

type binding struct{}

func (binding) EntityType() models.EntityType {
	return entityType
}

func (binding) Validate(payload interface{}) error {
	data, ok := payload.(documentapimodels.DocumentChangeData)
	if !ok {
		return errors.Errorf("unexpected payload type %T", payload)
	}
	return data.Validate()
}

func (binding) CreateRecord(s workflowhandler.Stores, propertyID, requesterID string, payload interface{}) (string, string, error) {
	data := payload.(documentapimodels.DocumentChangeData)
	rec := dbmodels.DocumentChange{
		BasePropertyModel: dbmodels.BasePropertyModel{
			PropertyID: propertyID,
		},
		EmployeeID:   requesterID,
		DocumentName: data.DocumentName,
		Summary:      data.Summary,
		RevisionNote: data.RevisionNote,
	}
	id, err := s.Documents.Create(rec)
	if err != nil {
		return "", "", err
	}
	title := fmt.Sprintf("Document change: %v", data.DocumentName)
	return id, title, nil
}

func (binding) ResolveAssignee(s workflowhandler.Stores, propertyID, requesterID string, status models.RequestStatus) (string, error) {
	return workflowhandler.ResolveStatusAssignee(s, propertyID, requesterID, status)
}
