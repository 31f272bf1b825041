package documentapimodels

import (
	"github.com/pkg/errors"

	dbmodels "hotel-ops-backend/models/db"
)

type DocumentChangeData struct {
	DocumentName string `json:"document_name"`
	Summary      string `json:"summary"`
	RevisionNote string `json:"revision_note,omitempty"`
}

func (r DocumentChangeData) Validate() error {
	if r.DocumentName == "" {
		return errors.New("document name is required")
	}
	if r.Summary == "" {
		return errors.New("change summary is required")
	}
	return nil
}

type DocumentChangeView struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	DocumentName string `json:"document_name"`
	Summary      string `json:"summary"`
	RevisionNote string `json:"revision_note,omitempty"`
}

func DocumentChangeConvert(rec dbmodels.DocumentChange) DocumentChangeView {
	return DocumentChangeView{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		DocumentName: rec.DocumentName,
		Summary:      rec.Summary,
		RevisionNote: rec.RevisionNote,
	}
}
