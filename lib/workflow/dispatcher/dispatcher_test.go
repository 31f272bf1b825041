package dispatcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hotel-ops-backend/models"
	dbmodels "hotel-ops-backend/models/db"
)

func makeRequest(status models.RequestStatus, assigneeID *string) dbmodels.Request {
	rec := dbmodels.Request{
		RequestNumber:     "REQ-000042",
		EntityType:        models.EntityTypeLeaveRequest,
		Title:             "Leave request: annual, 3 days",
		RequesterID:       "requester-1",
		Status:            status,
		CurrentAssigneeID: assigneeID,
	}
	rec.ID = "req-1"
	rec.PropertyID = "property-1"
	return rec
}

func TestDispatchForwardProgressNotifiesAssignee(t *testing.T) {
	assignee := "supervisor-1"
	rec := makeRequest(models.RequestStatusPendingSupervisor, &assignee)

	intents := Dispatch(rec, models.RequestStatusDraft, "requester-1")
	require.Len(t, intents, 1)
	require.Equal(t, "supervisor-1", intents[0].RecipientID)
	require.Equal(t, models.NotifyApprovalRequested, intents[0].Template)
	require.Equal(t, "REQ-000042", intents[0].RequestNumber)
}

func TestDispatchTerminalStatusesNotifyRequester(t *testing.T) {
	cases := []struct {
		status   models.RequestStatus
		template models.NotificationTemplate
	}{
		{models.RequestStatusApproved, models.NotifyRequestApproved},
		{models.RequestStatusRejected, models.NotifyRequestRejected},
		{models.RequestStatusClosed, models.NotifyRequestClosed},
	}
	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			rec := makeRequest(tc.status, nil)
			intents := Dispatch(rec, models.RequestStatusPendingHR, "hr-1")
			require.Len(t, intents, 1)
			require.Equal(t, "requester-1", intents[0].RecipientID)
			require.Equal(t, tc.template, intents[0].Template)
		})
	}
}

func TestDispatchReturnForCorrectionNotifiesRequester(t *testing.T) {
	requester := "requester-1"
	rec := makeRequest(models.RequestStatusReturned, &requester)

	intents := Dispatch(rec, models.RequestStatusPendingHR, "hr-1")
	require.Len(t, intents, 1)
	require.Equal(t, "requester-1", intents[0].RecipientID)
	require.Equal(t, models.NotifyRequestReturned, intents[0].Template)
}

func TestDispatchSkipsActorsOwnAction(t *testing.T) {
	// requester cancels own request: closed, no self notification
	rec := makeRequest(models.RequestStatusClosed, nil)
	require.Empty(t, Dispatch(rec, models.RequestStatusPendingSupervisor, "requester-1"))

	// resubmit: the returned request goes back to the supervisor, the
	// requester acting gets nothing, the supervisor gets one intent
	supervisor := "supervisor-1"
	rec = makeRequest(models.RequestStatusPendingSupervisor, &supervisor)
	intents := Dispatch(rec, models.RequestStatusReturned, "requester-1")
	require.Len(t, intents, 1)
	require.Equal(t, "supervisor-1", intents[0].RecipientID)
}
