package documenthandler

import (
	"github.com/pkg/errors"

	"hotel-ops-backend/db"
	documentstore "hotel-ops-backend/lib/document-change/store"
	workflowhandler "hotel-ops-backend/lib/workflow"
	workflowerrors "hotel-ops-backend/lib/workflow/errors"
	documentapimodels "hotel-ops-backend/models/api/document"
	requestapimodels "hotel-ops-backend/models/api/request"
)

type Provider interface {
	Create(propertyID, requesterID string, data documentapimodels.DocumentChangeData) (requestapimodels.RequestView, error)
	GetByID(propertyID, id string) (documentapimodels.DocumentChangeView, error)
}

var Instance Provider

func NewHandler() {
	Instance = New(workflowhandler.Instance, documentstore.NewInstance(db.DB))
}

func New(engine workflowhandler.Provider, store documentstore.Provider) Provider {
	return &impl{
		engine: engine,
		store:  store,
	}
}

type impl struct {
	engine workflowhandler.Provider
	store  documentstore.Provider
}

func (i impl) Create(propertyID, requesterID string, data documentapimodels.DocumentChangeData) (requestapimodels.RequestView, error) {
	return i.engine.CreateRequest(propertyID, requesterID, entityType, data)
}

func (i impl) GetByID(propertyID, id string) (documentapimodels.DocumentChangeView, error) {
	rec, err := i.store.GetByID(propertyID, id)
	if err != nil {
		return documentapimodels.DocumentChangeView{}, err
	}
	if rec == nil {
		return documentapimodels.DocumentChangeView{}, errors.Wrapf(workflowerrors.ErrNotFound, "document change %v", id)
	}
	return documentapimodels.DocumentChangeConvert(*rec), nil
}
