package workflowhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"hotel-ops-backend/db"
	"hotel-ops-backend/lib/workflow/dispatcher"
	workflowerrors "hotel-ops-backend/lib/workflow/errors"
	"hotel-ops-backend/lib/workflow/rules"
	"hotel-ops-backend/models"
	requestapimodels "hotel-ops-backend/models/api/request"
	dbmodels "hotel-ops-backend/models/db"
)

// Provider is the workflow engine: the only component that creates or
// mutates a Request. Every operation re-reads live state before acting;
// client-side status checks are a UX convenience, never trusted here.
type Provider interface {
	Register(binding DomainBinding)
	CreateRequest(propertyID, requesterID string, entityType models.EntityType, payload interface{}) (requestapimodels.RequestView, error)
	Transition(propertyID, requestID, actorID string, toStatus models.RequestStatus, note string) (requestapimodels.RequestView, error)
	CancelRequest(propertyID, requestID, actorID string) (requestapimodels.RequestView, error)
	GetByID(propertyID, requestID string) (requestapimodels.RequestView, error)
	History(propertyID, requestID string) ([]requestapimodels.HistoryView, error)
}

// DomainBinding is what a domain module (leave request, document change, ...)
// supplies to plug its entity type into the engine: payload validation,
// domain record creation inside the engine's unit of work, assignee
// resolution and a display title for the request envelope.
type DomainBinding interface {
	EntityType() models.EntityType
	Validate(payload interface{}) error
	CreateRecord(s Stores, propertyID, requesterID string, payload interface{}) (entityID, title string, err error)
	ResolveAssignee(s Stores, propertyID, requesterID string, status models.RequestStatus) (assigneeID string, err error)
}

// Notifier consumes notification intents after a committed transition.
// Implementations must be best-effort: a delivery failure is logged by the
// implementation and never reported back to the engine.
type Notifier interface {
	Notify(intents []models.NotificationIntent)
}

var Instance Provider

func NewHandler(notifier Notifier) {
	Instance = New(NewGormStorage(db.DB), notifier)
}

func New(storage Storage, notifier Notifier) Provider {
	return &impl{
		storage:  storage,
		notifier: notifier,
		bindings: map[models.EntityType]DomainBinding{},
	}
}

type impl struct {
	storage  Storage
	notifier Notifier
	bindings map[models.EntityType]DomainBinding
}

func (i *impl) Register(binding DomainBinding) {
	i.bindings[binding.EntityType()] = binding
}

func (i *impl) CreateRequest(propertyID, requesterID string, entityType models.EntityType, payload interface{}) (requestapimodels.RequestView, error) {
	logger := log.
		WithField("property_id", propertyID).
		WithField("requester_id", requesterID).
		WithField("entity_type", entityType)
	binding, ok := i.bindings[entityType]
	if !ok {
		return requestapimodels.RequestView{}, errors.Wrapf(workflowerrors.ErrValidation, "no workflow registered for entity type %v", entityType)
	}
	if err := binding.Validate(payload); err != nil {
		return requestapimodels.RequestView{}, errors.Wrapf(workflowerrors.ErrValidation, "%v", err)
	}

	var rec dbmodels.Request
	err := i.storage.Atomic(func(s Stores) error {
		requester, err := s.Employees.GetByID(requesterID)
		if err != nil {
			return err
		}
		if requester == nil {
			return errors.Wrapf(workflowerrors.ErrValidation, "unknown requester %v", requesterID)
		}

		entityID, title, err := binding.CreateRecord(s, propertyID, requesterID, payload)
		if err != nil {
			return err
		}
		number, err := s.Requests.NextNumber(propertyID)
		if err != nil {
			return err
		}
		rec = dbmodels.Request{
			BasePropertyModel: dbmodels.BasePropertyModel{
				PropertyID: propertyID,
			},
			RequestNumber:     number,
			EntityType:        entityType,
			EntityID:          entityID,
			Title:             title,
			RequesterID:       requesterID,
			Status:            models.RequestStatusDraft,
			CurrentAssigneeID: &requesterID,
			Version:           1,
		}
		id, err := s.Requests.Create(rec)
		if err != nil {
			return err
		}
		rec.ID = id

		// the submit transition happens in the same unit of work: a request
		// is never observable in draft without its first assignee resolved
		return i.apply(s, &rec, i.submitTarget(entityType), requesterID, "submitted")
	})
	if err != nil {
		logger.WithError(err).Error("request creation failed")
		return requestapimodels.RequestView{}, err
	}

	i.notify(rec, models.RequestStatusDraft, requesterID)
	logger.
		WithField("request_id", rec.ID).
		WithField("request_number", rec.RequestNumber).
		Info("request created")
	return requestapimodels.RequestConvert(rec), nil
}

func (i *impl) Transition(propertyID, requestID, actorID string, toStatus models.RequestStatus, note string) (requestapimodels.RequestView, error) {
	logger := log.
		WithField("property_id", propertyID).
		WithField("request_id", requestID).
		WithField("actor_id", actorID).
		WithField("to_status", toStatus)

	var rec dbmodels.Request
	var prev models.RequestStatus
	err := i.storage.Atomic(func(s Stores) error {
		r, err := i.getRec(s, propertyID, requestID)
		if err != nil {
			return err
		}
		prev = r.Status
		edge, ok := rules.Lookup(r.EntityType, r.Status, toStatus)
		if !ok {
			return errors.Wrapf(workflowerrors.ErrIllegalTransition, "%v -> %v is not allowed for %v", r.Status, toStatus, r.EntityType)
		}
		if err := i.authorize(s, r, edge, actorID); err != nil {
			return err
		}
		rec = *r
		return i.apply(s, &rec, toStatus, actorID, note)
	})
	if err != nil {
		logger.WithError(err).Error("transition failed")
		return requestapimodels.RequestView{}, err
	}

	i.notify(rec, prev, actorID)
	logger.WithField("from_status", prev).Info("request transitioned")
	return requestapimodels.RequestConvert(rec), nil
}

func (i *impl) CancelRequest(propertyID, requestID, actorID string) (requestapimodels.RequestView, error) {
	logger := log.
		WithField("property_id", propertyID).
		WithField("request_id", requestID).
		WithField("actor_id", actorID)

	var rec dbmodels.Request
	var prev models.RequestStatus
	err := i.storage.Atomic(func(s Stores) error {
		r, err := i.getRec(s, propertyID, requestID)
		if err != nil {
			return err
		}
		if r.RequesterID != actorID {
			return errors.Wrap(workflowerrors.ErrForbidden, "only the requester may cancel a request")
		}
		if _, ok := rules.Lookup(r.EntityType, r.Status, models.RequestStatusClosed); !ok {
			return errors.Wrapf(workflowerrors.ErrIllegalTransition, "request in status %v cannot be cancelled", r.Status)
		}
		prev = r.Status
		rec = *r
		return i.apply(s, &rec, models.RequestStatusClosed, actorID, "cancelled by requester")
	})
	if err != nil {
		logger.WithError(err).Error("cancel failed")
		return requestapimodels.RequestView{}, err
	}

	i.notify(rec, prev, actorID)
	logger.Info("request cancelled")
	return requestapimodels.RequestConvert(rec), nil
}

func (i *impl) GetByID(propertyID, requestID string) (requestapimodels.RequestView, error) {
	s := i.storage.Stores()
	rec, err := i.getRec(s, propertyID, requestID)
	if err != nil {
		return requestapimodels.RequestView{}, err
	}
	return requestapimodels.RequestConvert(*rec), nil
}

func (i *impl) History(propertyID, requestID string) ([]requestapimodels.HistoryView, error) {
	s := i.storage.Stores()
	if _, err := i.getRec(s, propertyID, requestID); err != nil {
		return nil, err
	}
	list, err := s.History.List(propertyID, requestID)
	if err != nil {
		return nil, err
	}
	result := make([]requestapimodels.HistoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, requestapimodels.HistoryConvert(rec))
	}
	return result, nil
}

func (i *impl) getRec(s Stores, propertyID, requestID string) (*dbmodels.Request, error) {
	rec, err := s.Requests.GetByID(propertyID, requestID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrapf(workflowerrors.ErrNotFound, "request %v", requestID)
	}
	return rec, nil
}

// submitTarget is the single forward edge out of draft.
func (i *impl) submitTarget(entityType models.EntityType) models.RequestStatus {
	for _, edge := range rules.LegalTransitions(entityType, models.RequestStatusDraft) {
		if !edge.To.IsTerminal() {
			return edge.To
		}
	}
	return models.RequestStatusPendingSupervisor
}

// authorize re-checks the actor against live data. Admin-only edges require
// the admin role even from the current assignee; every other edge is open to
// the current assignee or to a member of the edge's role class.
func (i *impl) authorize(s Stores, r *dbmodels.Request, edge rules.Edge, actorID string) error {
	if edge.Actor != models.ActorRoleAdmin &&
		r.CurrentAssigneeID != nil && *r.CurrentAssigneeID == actorID {
		return nil
	}
	actor, err := s.Employees.GetByID(actorID)
	if err != nil {
		return err
	}
	if actor == nil {
		return errors.Wrapf(workflowerrors.ErrForbidden, "unknown actor %v", actorID)
	}
	switch edge.Actor {
	case models.ActorRoleAdmin:
		if actor.Role.IsPropertyAdmin() {
			return nil
		}
	case models.ActorRoleHR:
		if actor.Role == models.HRRole {
			return nil
		}
	case models.ActorRoleSupervisor:
		manager, err := s.Employees.GetManager(r.RequesterID)
		if err != nil {
			return err
		}
		if manager != nil && manager.ID == actorID {
			return nil
		}
	case models.ActorRoleRequester:
		if actorID == r.RequesterID {
			return nil
		}
	}
	return errors.Wrapf(workflowerrors.ErrForbidden, "actor %v may not move request to %v", actorID, edge.To)
}

// apply performs the validated move: recompute the assignee, write the
// conditional update, append the history entry. Legality and authorization
// are the caller's responsibility.
func (i *impl) apply(s Stores, r *dbmodels.Request, toStatus models.RequestStatus, actorID, note string) error {
	var assigneePtr *string
	if !toStatus.IsTerminal() {
		binding, ok := i.bindings[r.EntityType]
		if !ok {
			return errors.Wrapf(workflowerrors.ErrValidation, "no workflow registered for entity type %v", r.EntityType)
		}
		assigneeID, err := binding.ResolveAssignee(s, r.PropertyID, r.RequesterID, toStatus)
		if err != nil {
			return err
		}
		if assigneeID == "" {
			return errors.Wrapf(workflowerrors.ErrAssigneeResolution, "no assignee for status %v", toStatus)
		}
		assigneePtr = &assigneeID
	}

	updMap := map[string]interface{}{
		"status":              toStatus,
		"current_assignee_id": assigneePtr,
	}
	if err := s.Requests.UpdateWithVersion(r.PropertyID, r.ID, r.Version, updMap); err != nil {
		return err
	}

	history := dbmodels.RequestHistory{
		BasePropertyModel: dbmodels.BasePropertyModel{
			PropertyID: r.PropertyID,
		},
		RequestID:  r.ID,
		FromStatus: r.Status,
		ToStatus:   toStatus,
		ActorID:    actorID,
		Note:       note,
	}
	if _, err := s.History.Create(history); err != nil {
		return err
	}

	r.Status = toStatus
	r.CurrentAssigneeID = assigneePtr
	r.CurrentAssignee = nil
	r.Version++
	return nil
}

func (i *impl) notify(rec dbmodels.Request, prev models.RequestStatus, actorID string) {
	if i.notifier == nil {
		return
	}
	intents := dispatcher.Dispatch(rec, prev, actorID)
	if len(intents) == 0 {
		return
	}
	i.notifier.Notify(intents)
}

// ResolveStatusAssignee is the shared assignee resolution used by the
// current domain bindings: the supervisor stage goes to the requester's
// direct manager, the HR stage to the property's HR approver, a returned
// request back to the requester.
func ResolveStatusAssignee(s Stores, propertyID, requesterID string, status models.RequestStatus) (string, error) {
	switch status {
	case models.RequestStatusPendingSupervisor:
		manager, err := s.Employees.GetManager(requesterID)
		if err != nil {
			return "", err
		}
		if manager == nil {
			return "", errors.Wrapf(workflowerrors.ErrAssigneeResolution, "requester %v has no manager on file", requesterID)
		}
		return manager.ID, nil
	case models.RequestStatusPendingHR:
		approver, err := s.Employees.GetHRApprover(propertyID)
		if err != nil {
			return "", err
		}
		if approver == nil {
			return "", errors.Wrapf(workflowerrors.ErrAssigneeResolution, "property %v has no HR approver", propertyID)
		}
		return approver.ID, nil
	case models.RequestStatusReturned:
		return requesterID, nil
	}
	return "", nil
}
