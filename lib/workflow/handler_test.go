package workflowhandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	workflowerrors "hotel-ops-backend/lib/workflow/errors"
	"hotel-ops-backend/models"
	dbmodels "hotel-ops-backend/models/db"
)

const testProperty = "prop-1"

type fixture struct {
	engine   Provider
	storage  *fakeStorage
	notifier *fakeNotifier
	binding  *stubBinding
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	employees := &fakeEmployees{byID: map[string]dbmodels.Employee{}}
	supID := "sup-1"
	base := time.Now().Add(-time.Hour)
	add := func(id string, role models.UserRole, managerID *string) {
		employees.byID[id] = dbmodels.Employee{
			BasePropertyModel: dbmodels.BasePropertyModel{
				BaseModel:  dbmodels.BaseModel{ID: id, CreatedAt: base},
				PropertyID: testProperty,
			},
			FirstName: "Test",
			LastName:  id,
			Role:      role,
			Status:    models.UserWorkingStatus,
			ManagerID: managerID,
		}
		base = base.Add(time.Minute)
	}
	add("sup-1", models.SupervisorRole, nil)
	add("hr-1", models.HRRole, nil)
	add("adm-1", models.PropertyAdminRole, nil)
	add("emp-1", models.EmployeeRole, &supID)
	add("emp-2", models.EmployeeRole, &supID)

	storage := &fakeStorage{
		requests:  newFakeRequests(),
		history:   &fakeHistory{},
		employees: employees,
	}
	notifier := &fakeNotifier{}
	binding := &stubBinding{}
	engine := New(storage, notifier)
	engine.Register(binding)
	return &fixture{engine: engine, storage: storage, notifier: notifier, binding: binding}
}

func (f *fixture) create(t *testing.T) string {
	t.Helper()
	view, err := f.engine.CreateRequest(testProperty, "emp-1", models.EntityTypeLeaveRequest, struct{}{})
	require.NoError(t, err)
	f.notifier.reset()
	return view.ID
}

func (f *fixture) record(t *testing.T, id string) dbmodels.Request {
	t.Helper()
	rec, err := f.storage.requests.GetByID(testProperty, id)
	require.NoError(t, err)
	require.NotNil(t, rec)
	return *rec
}

func TestCreateSubmitsInOneStep(t *testing.T) {
	f := newFixture(t)
	view, err := f.engine.CreateRequest(testProperty, "emp-1", models.EntityTypeLeaveRequest, struct{}{})
	require.NoError(t, err)

	require.Equal(t, "REQ-000001", view.RequestNumber)
	require.Equal(t, models.RequestStatusPendingSupervisor, view.Status)
	require.NotNil(t, view.CurrentAssigneeID)
	require.Equal(t, "sup-1", *view.CurrentAssigneeID)
	require.Equal(t, int64(2), view.Version)
	require.Equal(t, "Leave request: annual, 3 days", view.Title)

	history, err := f.engine.History(testProperty, view.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, models.RequestStatusDraft, history[0].FromStatus)
	require.Equal(t, models.RequestStatusPendingSupervisor, history[0].ToStatus)
	require.Equal(t, "emp-1", history[0].ActorID)

	require.Len(t, f.notifier.intents, 1)
	require.Equal(t, "sup-1", f.notifier.intents[0].RecipientID)
	require.Equal(t, models.NotifyApprovalRequested, f.notifier.intents[0].Template)
}

func TestCreateRejectsUnknownEntityTypeAndBadPayload(t *testing.T) {
	f := newFixture(t)

	_, err := f.engine.CreateRequest(testProperty, "emp-1", models.EntityType("payslip"), struct{}{})
	require.ErrorIs(t, err, workflowerrors.ErrValidation)

	_, err = f.engine.CreateRequest(testProperty, "emp-1", models.EntityTypeLeaveRequest, nil)
	require.ErrorIs(t, err, workflowerrors.ErrValidation)

	count, err := f.storage.requests.ListCount(testProperty, listAll())
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestCreateRollsBackOnHistoryFailure(t *testing.T) {
	f := newFixture(t)
	f.storage.history.failNext = true

	_, err := f.engine.CreateRequest(testProperty, "emp-1", models.EntityTypeLeaveRequest, struct{}{})
	require.Error(t, err)

	count, err := f.storage.requests.ListCount(testProperty, listAll())
	require.NoError(t, err)
	require.Zero(t, count)
	require.Empty(t, f.storage.history.entries)
	require.Empty(t, f.notifier.intents)

	// the rolled back sequence number is reused by the next creation
	view, err := f.engine.CreateRequest(testProperty, "emp-1", models.EntityTypeLeaveRequest, struct{}{})
	require.NoError(t, err)
	require.Equal(t, "REQ-000001", view.RequestNumber)
}

func TestCreateFailsWhenRequesterHasNoManager(t *testing.T) {
	f := newFixture(t)
	orphan := f.storage.employees.byID["emp-1"]
	orphan.ManagerID = nil
	f.storage.employees.byID["emp-1"] = orphan

	_, err := f.engine.CreateRequest(testProperty, "emp-1", models.EntityTypeLeaveRequest, struct{}{})
	require.ErrorIs(t, err, workflowerrors.ErrAssigneeResolution)

	count, err := f.storage.requests.ListCount(testProperty, listAll())
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestIllegalTransitionLeavesRequestUnchanged(t *testing.T) {
	f := newFixture(t)
	id := f.create(t)
	before := f.record(t, id)

	_, err := f.engine.Transition(testProperty, id, "sup-1", models.RequestStatusApproved, "")
	require.ErrorIs(t, err, workflowerrors.ErrIllegalTransition)

	after := f.record(t, id)
	require.Equal(t, before.Status, after.Status)
	require.Equal(t, before.Version, after.Version)
	require.Len(t, f.storage.history.entries, 1)
	require.Empty(t, f.notifier.intents)
}

func TestTransitionByNonAssigneeIsForbidden(t *testing.T) {
	f := newFixture(t)
	id := f.create(t)

	_, err := f.engine.Transition(testProperty, id, "emp-2", models.RequestStatusPendingHR, "")
	require.ErrorIs(t, err, workflowerrors.ErrForbidden)

	require.Equal(t, models.RequestStatusPendingSupervisor, f.record(t, id).Status)
	require.Len(t, f.storage.history.entries, 1)
	require.Empty(t, f.notifier.intents)
}

func TestEndToEndApproval(t *testing.T) {
	f := newFixture(t)
	id := f.create(t)

	view, err := f.engine.Transition(testProperty, id, "sup-1", models.RequestStatusPendingHR, "looks fine")
	require.NoError(t, err)
	require.Equal(t, models.RequestStatusPendingHR, view.Status)
	require.Equal(t, "hr-1", *view.CurrentAssigneeID)
	require.Len(t, f.notifier.intents, 1)
	require.Equal(t, "hr-1", f.notifier.intents[0].RecipientID)
	require.Equal(t, models.NotifyApprovalRequested, f.notifier.intents[0].Template)
	f.notifier.reset()

	view, err = f.engine.Transition(testProperty, id, "hr-1", models.RequestStatusApproved, "")
	require.NoError(t, err)
	require.Equal(t, models.RequestStatusApproved, view.Status)
	require.Nil(t, view.CurrentAssigneeID)
	require.Equal(t, int64(4), view.Version)
	require.Len(t, f.notifier.intents, 1)
	require.Equal(t, "emp-1", f.notifier.intents[0].RecipientID)
	require.Equal(t, models.NotifyRequestApproved, f.notifier.intents[0].Template)

	history, err := f.engine.History(testProperty, id)
	require.NoError(t, err)
	require.Len(t, history, 3)
	for i := 1; i < len(history); i++ {
		require.Equal(t, history[i-1].ToStatus, history[i].FromStatus,
			"history must chain without gaps")
	}
	require.Equal(t, models.RequestStatusApproved, history[2].ToStatus)
	require.Equal(t, "hr-1", history[2].ActorID)
}

func TestReturnAndResubmit(t *testing.T) {
	f := newFixture(t)
	id := f.create(t)

	view, err := f.engine.Transition(testProperty, id, "sup-1", models.RequestStatusReturned, "dates overlap the audit")
	require.NoError(t, err)
	require.Equal(t, models.RequestStatusReturned, view.Status)
	require.Equal(t, "emp-1", *view.CurrentAssigneeID)
	require.Len(t, f.notifier.intents, 1)
	require.Equal(t, "emp-1", f.notifier.intents[0].RecipientID)
	require.Equal(t, models.NotifyRequestReturned, f.notifier.intents[0].Template)
	f.notifier.reset()

	view, err = f.engine.Transition(testProperty, id, "emp-1", models.RequestStatusPendingSupervisor, "dates adjusted")
	require.NoError(t, err)
	require.Equal(t, models.RequestStatusPendingSupervisor, view.Status)
	require.Equal(t, "sup-1", *view.CurrentAssigneeID)

	history, err := f.engine.History(testProperty, id)
	require.NoError(t, err)
	require.Len(t, history, 3)
	require.Equal(t, models.RequestStatusReturned, history[2].FromStatus)
	require.Equal(t, models.RequestStatusPendingSupervisor, history[2].ToStatus)

	// the requester acted on their own request: only the new assignee is told
	require.Len(t, f.notifier.intents, 1)
	require.Equal(t, "sup-1", f.notifier.intents[0].RecipientID)
}

func TestConcurrentTransitionLosesWithConflict(t *testing.T) {
	f := newFixture(t)
	id := f.create(t)

	// a competing writer commits between this actor's read and write
	f.storage.requests.beforeUpdate = func() {
		rec := f.storage.requests.byID[id]
		rec.Version++
		f.storage.requests.byID[id] = rec
	}

	_, err := f.engine.Transition(testProperty, id, "sup-1", models.RequestStatusPendingHR, "")
	require.ErrorIs(t, err, workflowerrors.ErrConflict)
	require.Len(t, f.storage.history.entries, 1)
	require.Empty(t, f.notifier.intents)
}

func TestCancelByRequester(t *testing.T) {
	f := newFixture(t)
	id := f.create(t)

	view, err := f.engine.CancelRequest(testProperty, id, "emp-1")
	require.NoError(t, err)
	require.Equal(t, models.RequestStatusClosed, view.Status)
	require.Nil(t, view.CurrentAssigneeID)

	history, err := f.engine.History(testProperty, id)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, models.RequestStatusClosed, history[1].ToStatus)
	require.Equal(t, "emp-1", history[1].ActorID)
	require.Equal(t, "cancelled by requester", history[1].Note)

	// the requester triggered the close themselves, nobody is notified
	require.Empty(t, f.notifier.intents)
}

func TestCancelByNonRequesterIsForbidden(t *testing.T) {
	f := newFixture(t)
	id := f.create(t)

	_, err := f.engine.CancelRequest(testProperty, id, "sup-1")
	require.ErrorIs(t, err, workflowerrors.ErrForbidden)
	require.Equal(t, models.RequestStatusPendingSupervisor, f.record(t, id).Status)
}

func TestCancelTerminalRequestIsIllegal(t *testing.T) {
	f := newFixture(t)
	id := f.create(t)
	_, err := f.engine.CancelRequest(testProperty, id, "emp-1")
	require.NoError(t, err)

	_, err = f.engine.CancelRequest(testProperty, id, "emp-1")
	require.ErrorIs(t, err, workflowerrors.ErrIllegalTransition)
}

func TestAdminCloseRequiresAdminRole(t *testing.T) {
	f := newFixture(t)
	id := f.create(t)

	// the current assignee is not enough for an administrative close
	_, err := f.engine.Transition(testProperty, id, "sup-1", models.RequestStatusClosed, "")
	require.ErrorIs(t, err, workflowerrors.ErrForbidden)

	view, err := f.engine.Transition(testProperty, id, "adm-1", models.RequestStatusClosed, "duplicate of REQ-000001")
	require.NoError(t, err)
	require.Equal(t, models.RequestStatusClosed, view.Status)

	require.Len(t, f.notifier.intents, 1)
	require.Equal(t, "emp-1", f.notifier.intents[0].RecipientID)
	require.Equal(t, models.NotifyRequestClosed, f.notifier.intents[0].Template)
}

func TestTransitionFailsWhenPropertyHasNoHRApprover(t *testing.T) {
	f := newFixture(t)
	id := f.create(t)

	dismissed := f.storage.employees.byID["hr-1"]
	dismissed.Status = models.UserDismissedStatus
	f.storage.employees.byID["hr-1"] = dismissed

	_, err := f.engine.Transition(testProperty, id, "sup-1", models.RequestStatusPendingHR, "")
	require.ErrorIs(t, err, workflowerrors.ErrAssigneeResolution)

	// the failed move left no trace
	require.Equal(t, models.RequestStatusPendingSupervisor, f.record(t, id).Status)
	require.Len(t, f.storage.history.entries, 1)
}

func TestUnknownRequestIsNotFound(t *testing.T) {
	f := newFixture(t)
	id := f.create(t)

	_, err := f.engine.GetByID(testProperty, "missing")
	require.ErrorIs(t, err, workflowerrors.ErrNotFound)

	_, err = f.engine.Transition(testProperty, "missing", "sup-1", models.RequestStatusPendingHR, "")
	require.ErrorIs(t, err, workflowerrors.ErrNotFound)

	// requests are scoped by property
	_, err = f.engine.GetByID("prop-2", id)
	require.ErrorIs(t, err, workflowerrors.ErrNotFound)
}

func TestRequestNumbersAreSequentialPerProperty(t *testing.T) {
	f := newFixture(t)
	first, err := f.engine.CreateRequest(testProperty, "emp-1", models.EntityTypeLeaveRequest, struct{}{})
	require.NoError(t, err)
	second, err := f.engine.CreateRequest(testProperty, "emp-2", models.EntityTypeLeaveRequest, struct{}{})
	require.NoError(t, err)

	require.Equal(t, "REQ-000001", first.RequestNumber)
	require.Equal(t, "REQ-000002", second.RequestNumber)
}
