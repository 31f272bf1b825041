package requestapimodels

import (
	"time"

	"github.com/pkg/errors"

	"hotel-ops-backend/models"
	apimodels "hotel-ops-backend/models/api"
	dbmodels "hotel-ops-backend/models/db"
)

type RequestView struct {
	ID                string               `json:"id"`
	RequestNumber     string               `json:"request_number"`
	EntityType        models.EntityType    `json:"entity_type"`
	EntityID          string               `json:"entity_id"`
	Title             string               `json:"title"`
	RequesterID       string               `json:"requester_id"`
	RequesterName     string               `json:"requester_name,omitempty"`
	Status            models.RequestStatus `json:"status"`
	StatusName        string               `json:"status_name"`
	CurrentAssigneeID *string              `json:"current_assignee_id,omitempty"`
	AssigneeName      string               `json:"assignee_name,omitempty"`
	Version           int64                `json:"version"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

func RequestConvert(rec dbmodels.Request) RequestView {
	view := RequestView{
		ID:                rec.ID,
		RequestNumber:     rec.RequestNumber,
		EntityType:        rec.EntityType,
		EntityID:          rec.EntityID,
		Title:             rec.Title,
		RequesterID:       rec.RequesterID,
		Status:            rec.Status,
		StatusName:        rec.Status.ToHuman(),
		CurrentAssigneeID: rec.CurrentAssigneeID,
		Version:           rec.Version,
		CreatedAt:         rec.CreatedAt,
		UpdatedAt:         rec.UpdatedAt,
	}
	if rec.Requester != nil {
		view.RequesterName = rec.Requester.GetFullName()
	}
	if rec.CurrentAssignee != nil {
		view.AssigneeName = rec.CurrentAssignee.GetFullName()
	}
	return view
}

type HistoryView struct {
	FromStatus models.RequestStatus `json:"from_status"`
	ToStatus   models.RequestStatus `json:"to_status"`
	ActorID    string               `json:"actor_id"`
	ActorName  string               `json:"actor_name,omitempty"`
	Note       string               `json:"note,omitempty"`
	Date       time.Time            `json:"date"`
}

func HistoryConvert(rec dbmodels.RequestHistory) HistoryView {
	view := HistoryView{
		FromStatus: rec.FromStatus,
		ToStatus:   rec.ToStatus,
		ActorID:    rec.ActorID,
		Note:       rec.Note,
		Date:       rec.CreatedAt,
	}
	if rec.Actor != nil {
		view.ActorName = rec.Actor.GetFullName()
	}
	return view
}

type TransitionData struct {
	ToStatus models.RequestStatus `json:"to_status"`
	Note     string               `json:"note,omitempty"`
}

func (r TransitionData) Validate() error {
	if !r.ToStatus.IsValid() {
		return errors.Errorf("unknown target status: %v", r.ToStatus)
	}
	return nil
}

// Inbox scopes.
const (
	ScopeSubmitted = "submitted" // requests the viewer created
	ScopeAssigned  = "assigned"  // requests waiting on the viewer
	ScopeAll       = "all"       // administrative search
)

type RequestFilter struct {
	apimodels.Pagination
	Scope       string                 `json:"scope"`
	Statuses    []models.RequestStatus `json:"statuses,omitempty"`
	EntityTypes []models.EntityType    `json:"entity_types,omitempty"`
	RequesterID string                 `json:"requester_id,omitempty"`
	CreatedFrom *time.Time             `json:"created_from,omitempty"`
	CreatedTo   *time.Time             `json:"created_to,omitempty"`
	Search      string                 `json:"search,omitempty"`
}

func (r RequestFilter) Validate() error {
	switch r.Scope {
	case "", ScopeSubmitted, ScopeAssigned, ScopeAll:
	default:
		return errors.Errorf("unknown scope: %v", r.Scope)
	}
	for _, status := range r.Statuses {
		if !status.IsValid() {
			return errors.Errorf("unknown status in filter: %v", status)
		}
	}
	for _, entityType := range r.EntityTypes {
		if !entityType.IsValid() {
			return errors.Errorf("unknown entity type in filter: %v", entityType)
		}
	}
	return nil
}
