package leavehandler

import (
	"github.com/pkg/errors"

	"hotel-ops-backend/db"
	leavestore "hotel-ops-backend/lib/leave-request/store"
	workflowhandler "hotel-ops-backend/lib/workflow"
	workflowerrors "hotel-ops-backend/lib/workflow/errors"
	leaveapimodels "hotel-ops-backend/models/api/leave"
	requestapimodels "hotel-ops-backend/models/api/request"
)

type Provider interface {
	Create(propertyID, requesterID string, data leaveapimodels.LeaveRequestData) (requestapimodels.RequestView, error)
	GetByID(propertyID, id string) (leaveapimodels.LeaveRequestView, error)
}

var Instance Provider

func NewHandler() {
	Instance = New(workflowhandler.Instance, leavestore.NewInstance(db.DB))
}

func New(engine workflowhandler.Provider, store leavestore.Provider) Provider {
	return &impl{
		engine: engine,
		store:  store,
	}
}

type impl struct {
	engine workflowhandler.Provider
	store  leavestore.Provider
}

func (i impl) Create(propertyID, requesterID string, data leaveapimodels.LeaveRequestData) (requestapimodels.RequestView, error) {
	return i.engine.CreateRequest(propertyID, requesterID, entityType, data)
}

func (i impl) GetByID(propertyID, id string) (leaveapimodels.LeaveRequestView, error) {
	rec, err := i.store.GetByID(propertyID, id)
	if err != nil {
		return leaveapimodels.LeaveRequestView{}, err
	}
	if rec == nil {
		return leaveapimodels.LeaveRequestView{}, errors.Wrapf(workflowerrors.ErrNotFound, "leave request %v", id)
	}
	return leaveapimodels.LeaveRequestConvert(*rec), nil
}
