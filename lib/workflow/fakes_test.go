package workflowhandler

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	workflowerrors "hotel-ops-backend/lib/workflow/errors"
	workflowstore "hotel-ops-backend/lib/workflow/store"
	"hotel-ops-backend/models"
	employeeapimodels "hotel-ops-backend/models/api/employee"
	dbmodels "hotel-ops-backend/models/db"
)

// In-memory stand-ins for the gorm stores. fakeStorage snapshots state before
// each unit of work and restores it on error, mirroring transaction rollback.

type fakeRequests struct {
	byID    map[string]dbmodels.Request
	counter int64
	// beforeUpdate runs ahead of the version check, letting a test slip a
	// competing write between read and update.
	beforeUpdate func()
}

func newFakeRequests() *fakeRequests {
	return &fakeRequests{byID: map[string]dbmodels.Request{}}
}

func (f *fakeRequests) Create(rec dbmodels.Request) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	f.byID[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeRequests) GetByID(propertyID, id string) (*dbmodels.Request, error) {
	rec, ok := f.byID[id]
	if !ok || rec.PropertyID != propertyID {
		return nil, nil
	}
	copied := rec
	return &copied, nil
}

func (f *fakeRequests) UpdateWithVersion(propertyID, id string, version int64, updMap map[string]interface{}) error {
	if f.beforeUpdate != nil {
		hook := f.beforeUpdate
		f.beforeUpdate = nil
		hook()
	}
	rec, ok := f.byID[id]
	if !ok || rec.PropertyID != propertyID || rec.Version != version {
		return workflowerrors.ErrConflict
	}
	if status, ok := updMap["status"]; ok {
		rec.Status = status.(models.RequestStatus)
	}
	if assignee, ok := updMap["current_assignee_id"]; ok {
		rec.CurrentAssigneeID = assignee.(*string)
	}
	rec.Version = version + 1
	rec.UpdatedAt = time.Now()
	f.byID[id] = rec
	return nil
}

func (f *fakeRequests) List(propertyID string, filter workflowstore.ListFilter) ([]dbmodels.Request, error) {
	list := []dbmodels.Request{}
	for _, rec := range f.byID {
		if rec.PropertyID != propertyID {
			continue
		}
		if filter.RequesterID != "" && rec.RequesterID != filter.RequesterID {
			continue
		}
		if filter.AssigneeID != "" &&
			(rec.CurrentAssigneeID == nil || *rec.CurrentAssigneeID != filter.AssigneeID) {
			continue
		}
		list = append(list, rec)
	}
	sort.Slice(list, func(a, b int) bool {
		return list[a].CreatedAt.After(list[b].CreatedAt)
	})
	return list, nil
}

func (f *fakeRequests) ListCount(propertyID string, filter workflowstore.ListFilter) (int64, error) {
	list, err := f.List(propertyID, filter)
	if err != nil {
		return 0, err
	}
	return int64(len(list)), nil
}

func (f *fakeRequests) NextNumber(propertyID string) (string, error) {
	f.counter++
	return fmt.Sprintf("REQ-%06d", f.counter), nil
}

func listAll() workflowstore.ListFilter {
	return workflowstore.ListFilter{}
}

type fakeHistory struct {
	entries  []dbmodels.RequestHistory
	failNext bool
}

func (f *fakeHistory) Create(rec dbmodels.RequestHistory) (string, error) {
	if f.failNext {
		f.failNext = false
		return "", errors.New("history insert failed")
	}
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().Add(time.Duration(len(f.entries)) * time.Millisecond)
	f.entries = append(f.entries, rec)
	return rec.ID, nil
}

func (f *fakeHistory) List(propertyID, requestID string) ([]dbmodels.RequestHistory, error) {
	list := []dbmodels.RequestHistory{}
	for _, rec := range f.entries {
		if rec.PropertyID == propertyID && rec.RequestID == requestID {
			list = append(list, rec)
		}
	}
	return list, nil
}

type fakeEmployees struct {
	byID map[string]dbmodels.Employee
}

func (f *fakeEmployees) GetByID(id string) (*dbmodels.Employee, error) {
	rec, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	copied := rec
	return &copied, nil
}

func (f *fakeEmployees) GetManager(id string) (*dbmodels.Employee, error) {
	rec, ok := f.byID[id]
	if !ok || rec.ManagerID == nil {
		return nil, nil
	}
	return f.GetByID(*rec.ManagerID)
}

func (f *fakeEmployees) GetHRApprover(propertyID string) (*dbmodels.Employee, error) {
	var found *dbmodels.Employee
	for _, rec := range f.byID {
		if rec.PropertyID != propertyID || rec.Role != models.HRRole || rec.Status != models.UserWorkingStatus {
			continue
		}
		if found == nil || rec.CreatedAt.Before(found.CreatedAt) {
			copied := rec
			found = &copied
		}
	}
	return found, nil
}

func (f *fakeEmployees) List(propertyID string, filter employeeapimodels.EmployeeFilter) ([]dbmodels.Employee, error) {
	return nil, nil
}

func (f *fakeEmployees) ListCount(propertyID string, filter employeeapimodels.EmployeeFilter) (int64, error) {
	return 0, nil
}

type fakeStorage struct {
	requests  *fakeRequests
	history   *fakeHistory
	employees *fakeEmployees
}

func (f *fakeStorage) Stores() Stores {
	return Stores{
		Requests:  f.requests,
		History:   f.history,
		Employees: f.employees,
	}
}

func (f *fakeStorage) Atomic(fn func(s Stores) error) error {
	reqSnap := map[string]dbmodels.Request{}
	for id, rec := range f.requests.byID {
		reqSnap[id] = rec
	}
	counterSnap := f.requests.counter
	histSnap := append([]dbmodels.RequestHistory{}, f.history.entries...)

	if err := fn(f.Stores()); err != nil {
		f.requests.byID = reqSnap
		f.requests.counter = counterSnap
		f.history.entries = histSnap
		return err
	}
	return nil
}

type fakeNotifier struct {
	intents []models.NotificationIntent
}

func (f *fakeNotifier) Notify(intents []models.NotificationIntent) {
	f.intents = append(f.intents, intents...)
}

func (f *fakeNotifier) reset() {
	f.intents = nil
}

// stubBinding is a minimal domain module: no payload table of its own, a
// fixed title, the shared assignee resolution.
type stubBinding struct {
	createErr error
}

func (b *stubBinding) EntityType() models.EntityType {
	return models.EntityTypeLeaveRequest
}

func (b *stubBinding) Validate(payload interface{}) error {
	if payload == nil {
		return errors.New("payload is required")
	}
	return nil
}

func (b *stubBinding) CreateRecord(s Stores, propertyID, requesterID string, payload interface{}) (string, string, error) {
	if b.createErr != nil {
		return "", "", b.createErr
	}
	return uuid.NewString(), "Leave request: annual, 3 days", nil
}

func (b *stubBinding) ResolveAssignee(s Stores, propertyID, requesterID string, status models.RequestStatus) (string, error) {
	return ResolveStatusAssignee(s, propertyID, requesterID, status)
}
