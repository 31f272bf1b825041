package inboxhandler

import (
	"github.com/pkg/errors"

	"hotel-ops-backend/db"
	workflowerrors "hotel-ops-backend/lib/workflow/errors"
	workflowstore "hotel-ops-backend/lib/workflow/store"
	"hotel-ops-backend/models"
	requestapimodels "hotel-ops-backend/models/api/request"
	dbmodels "hotel-ops-backend/models/db"
)

// Provider is the request inbox: read-only list views over the request
// envelopes, scoped to the viewer. All mutation goes through the workflow
// engine.
type Provider interface {
	List(propertyID, viewerID string, viewerRole models.UserRole, filter requestapimodels.RequestFilter) (list []requestapimodels.RequestView, rowCount int64, err error)
	// ListForExport returns the raw records matching the filter without
	// pagination, for the xlsx export.
	ListForExport(propertyID, viewerID string, viewerRole models.UserRole, filter requestapimodels.RequestFilter) (list []dbmodels.Request, err error)
}

var Instance Provider

func NewHandler() {
	Instance = New(workflowstore.NewInstance(db.DB))
}

func New(store workflowstore.Provider) Provider {
	return &impl{
		store: store,
	}
}

type impl struct {
	store workflowstore.Provider
}

func (i impl) List(propertyID, viewerID string, viewerRole models.UserRole, filter requestapimodels.RequestFilter) ([]requestapimodels.RequestView, int64, error) {
	storeFilter, err := i.resolveFilter(viewerID, viewerRole, filter)
	if err != nil {
		return nil, 0, err
	}
	storeFilter.Page, storeFilter.Limit = filter.GetPage()

	recs, err := i.store.List(propertyID, storeFilter)
	if err != nil {
		return nil, 0, err
	}
	rowCount, err := i.store.ListCount(propertyID, storeFilter)
	if err != nil {
		return nil, 0, err
	}
	list := make([]requestapimodels.RequestView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, requestapimodels.RequestConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) ListForExport(propertyID, viewerID string, viewerRole models.UserRole, filter requestapimodels.RequestFilter) ([]dbmodels.Request, error) {
	storeFilter, err := i.resolveFilter(viewerID, viewerRole, filter)
	if err != nil {
		return nil, err
	}
	return i.store.List(propertyID, storeFilter)
}

// resolveFilter translates the viewer-facing scope into concrete store
// predicates.
func (i impl) resolveFilter(viewerID string, viewerRole models.UserRole, filter requestapimodels.RequestFilter) (workflowstore.ListFilter, error) {
	if err := filter.Validate(); err != nil {
		return workflowstore.ListFilter{}, errors.Wrapf(workflowerrors.ErrValidation, "%v", err)
	}
	storeFilter := workflowstore.ListFilter{
		Statuses:    filter.Statuses,
		EntityTypes: filter.EntityTypes,
		CreatedFrom: filter.CreatedFrom,
		CreatedTo:   filter.CreatedTo,
		Search:      filter.Search,
	}
	switch filter.Scope {
	case "", requestapimodels.ScopeSubmitted:
		storeFilter.RequesterID = viewerID
	case requestapimodels.ScopeAssigned:
		storeFilter.AssigneeID = viewerID
	case requestapimodels.ScopeAll:
		if !viewerRole.IsPropertyAdmin() {
			return workflowstore.ListFilter{}, errors.Wrap(workflowerrors.ErrForbidden, "scope \"all\" is limited to property administrators")
		}
		storeFilter.RequesterID = filter.RequesterID
	}
	return storeFilter, nil
}
