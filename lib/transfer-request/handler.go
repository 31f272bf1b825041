package transferhandler

import (
	"github.com/pkg/errors"

	"hotel-ops-backend/db"
	transferstore "hotel-ops-backend/lib/transfer-request/store"
	workflowhandler "hotel-ops-backend/lib/workflow"
	workflowerrors "hotel-ops-backend/lib/workflow/errors"
	requestapimodels "hotel-ops-backend/models/api/request"
	transferapimodels "hotel-ops-backend/models/api/transfer"
)

type Provider interface {
	Create(propertyID, requesterID string, data transferapimodels.TransferRequestData) (requestapimodels.RequestView, error)
	GetByID(propertyID, id string) (transferapimodels.TransferRequestView, error)
}

var Instance Provider

func NewHandler() {
	Instance = New(workflowhandler.Instance, transferstore.NewInstance(db.DB))
}

func New(engine workflowhandler.Provider, store transferstore.Provider) Provider {
	return &impl{
		engine: engine,
		store:  store,
	}
}

type impl struct {
	engine workflowhandler.Provider
	store  transferstore.Provider
}

func (i impl) Create(propertyID, requesterID string, data transferapimodels.TransferRequestData) (requestapimodels.RequestView, error) {
	return i.engine.CreateRequest(propertyID, requesterID, entityType, data)
}

func (i impl) GetByID(propertyID, id string) (transferapimodels.TransferRequestView, error) {
	rec, err := i.store.GetByID(propertyID, id)
	if err != nil {
		return transferapimodels.TransferRequestView{}, err
	}
	if rec == nil {
		return transferapimodels.TransferRequestView{}, errors.Wrapf(workflowerrors.ErrNotFound, "transfer request %v", id)
	}
	return transferapimodels.TransferRequestConvert(*rec), nil
}
