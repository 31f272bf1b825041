package inboxhandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	workflowerrors "hotel-ops-backend/lib/workflow/errors"
	workflowstore "hotel-ops-backend/lib/workflow/store"
	"hotel-ops-backend/models"
	requestapimodels "hotel-ops-backend/models/api/request"
	dbmodels "hotel-ops-backend/models/db"
)

type stubStore struct {
	recs       []dbmodels.Request
	lastFilter workflowstore.ListFilter
}

func (s *stubStore) Create(rec dbmodels.Request) (string, error) { return "", nil }

func (s *stubStore) GetByID(propertyID, id string) (*dbmodels.Request, error) { return nil, nil }

func (s *stubStore) UpdateWithVersion(propertyID, id string, version int64, updMap map[string]interface{}) error {
	return nil
}

func (s *stubStore) NextNumber(propertyID string) (string, error) { return "", nil }

func (s *stubStore) List(propertyID string, filter workflowstore.ListFilter) ([]dbmodels.Request, error) {
	s.lastFilter = filter
	return s.recs, nil
}

func (s *stubStore) ListCount(propertyID string, filter workflowstore.ListFilter) (int64, error) {
	return int64(len(s.recs)), nil
}

func TestListScopeMapping(t *testing.T) {
	cases := []struct {
		name          string
		scope         string
		wantRequester string
		wantAssignee  string
	}{
		{"default is submitted", "", "viewer-1", ""},
		{"submitted", requestapimodels.ScopeSubmitted, "viewer-1", ""},
		{"assigned", requestapimodels.ScopeAssigned, "", "viewer-1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &stubStore{}
			handler := New(store)
			_, _, err := handler.List("prop-1", "viewer-1", models.EmployeeRole,
				requestapimodels.RequestFilter{Scope: tc.scope})
			require.NoError(t, err)
			require.Equal(t, tc.wantRequester, store.lastFilter.RequesterID)
			require.Equal(t, tc.wantAssignee, store.lastFilter.AssigneeID)
		})
	}
}

func TestListScopeAllIsAdminOnly(t *testing.T) {
	store := &stubStore{}
	handler := New(store)

	_, _, err := handler.List("prop-1", "viewer-1", models.HRRole,
		requestapimodels.RequestFilter{Scope: requestapimodels.ScopeAll})
	require.ErrorIs(t, err, workflowerrors.ErrForbidden)

	_, _, err = handler.List("prop-1", "viewer-1", models.PropertyAdminRole,
		requestapimodels.RequestFilter{Scope: requestapimodels.ScopeAll, RequesterID: "emp-7"})
	require.NoError(t, err)
	require.Equal(t, "emp-7", store.lastFilter.RequesterID)
	require.Empty(t, store.lastFilter.AssigneeID)
}

func TestListRejectsUnknownScopeAndStatus(t *testing.T) {
	handler := New(&stubStore{})

	_, _, err := handler.List("prop-1", "viewer-1", models.EmployeeRole,
		requestapimodels.RequestFilter{Scope: "archived"})
	require.ErrorIs(t, err, workflowerrors.ErrValidation)

	_, _, err = handler.List("prop-1", "viewer-1", models.EmployeeRole,
		requestapimodels.RequestFilter{Statuses: []models.RequestStatus{"archived"}})
	require.ErrorIs(t, err, workflowerrors.ErrValidation)
}

func TestListConvertsRecords(t *testing.T) {
	store := &stubStore{recs: []dbmodels.Request{{
		BasePropertyModel: dbmodels.BasePropertyModel{
			BaseModel:  dbmodels.BaseModel{ID: "req-1"},
			PropertyID: "prop-1",
		},
		RequestNumber: "REQ-000007",
		EntityType:    models.EntityTypeLeaveRequest,
		Title:         "Leave request: annual, 3 days",
		RequesterID:   "viewer-1",
		Status:        models.RequestStatusPendingSupervisor,
		Version:       2,
	}}}
	handler := New(store)

	list, rowCount, err := handler.List("prop-1", "viewer-1", models.EmployeeRole,
		requestapimodels.RequestFilter{})
	require.NoError(t, err)
	require.Equal(t, int64(1), rowCount)
	require.Len(t, list, 1)
	require.Equal(t, "REQ-000007", list[0].RequestNumber)
	require.Equal(t, models.RequestStatusPendingSupervisor.ToHuman(), list[0].StatusName)
}
