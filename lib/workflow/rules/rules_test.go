package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hotel-ops-backend/models"
)

func TestLegalEdges(t *testing.T) {
	cases := []struct {
		name  string
		from  models.RequestStatus
		to    models.RequestStatus
		legal bool
	}{
		{"submit", models.RequestStatusDraft, models.RequestStatusPendingSupervisor, true},
		{"supervisor approve", models.RequestStatusPendingSupervisor, models.RequestStatusPendingHR, true},
		{"supervisor reject", models.RequestStatusPendingSupervisor, models.RequestStatusRejected, true},
		{"supervisor return", models.RequestStatusPendingSupervisor, models.RequestStatusReturned, true},
		{"hr approve", models.RequestStatusPendingHR, models.RequestStatusApproved, true},
		{"hr reject", models.RequestStatusPendingHR, models.RequestStatusRejected, true},
		{"hr return", models.RequestStatusPendingHR, models.RequestStatusReturned, true},
		{"resubmit", models.RequestStatusReturned, models.RequestStatusPendingSupervisor, true},
		{"admin close from supervisor stage", models.RequestStatusPendingSupervisor, models.RequestStatusClosed, true},
		{"admin close from hr stage", models.RequestStatusPendingHR, models.RequestStatusClosed, true},
		{"admin close from returned", models.RequestStatusReturned, models.RequestStatusClosed, true},
		{"admin close from draft", models.RequestStatusDraft, models.RequestStatusClosed, true},
		{"skip supervisor stage", models.RequestStatusDraft, models.RequestStatusPendingHR, false},
		{"draft approve", models.RequestStatusDraft, models.RequestStatusApproved, false},
		{"hr to supervisor", models.RequestStatusPendingHR, models.RequestStatusPendingSupervisor, false},
		{"reopen approved", models.RequestStatusApproved, models.RequestStatusPendingHR, false},
		{"reopen rejected", models.RequestStatusRejected, models.RequestStatusPendingSupervisor, false},
		{"reopen closed", models.RequestStatusClosed, models.RequestStatusDraft, false},
		{"self transition", models.RequestStatusPendingHR, models.RequestStatusPendingHR, false},
	}
	for _, entityType := range EntityTypes() {
		for _, tc := range cases {
			t.Run(string(entityType)+"/"+tc.name, func(t *testing.T) {
				require.Equal(t, tc.legal, IsLegal(entityType, tc.from, tc.to))
			})
		}
	}
}

func TestTerminalStatusesHaveNoOutgoingEdges(t *testing.T) {
	for _, entityType := range EntityTypes() {
		for _, status := range Statuses(entityType) {
			if !status.IsTerminal() {
				continue
			}
			require.Empty(t, LegalTransitions(entityType, status),
				"terminal status %v of %v must have no outgoing edges", status, entityType)
		}
	}
}

func TestNonTerminalStatusesCanBeClosed(t *testing.T) {
	for _, entityType := range EntityTypes() {
		for _, status := range Statuses(entityType) {
			if status.IsTerminal() {
				continue
			}
			edge, ok := Lookup(entityType, status, models.RequestStatusClosed)
			require.True(t, ok, "status %v of %v must allow administrative close", status, entityType)
			require.Equal(t, models.ActorRoleAdmin, edge.Actor)
		}
	}
}

func TestUnknownCombinationsAreIllegal(t *testing.T) {
	require.False(t, IsLegal(models.EntityType("payslip"), models.RequestStatusDraft, models.RequestStatusPendingSupervisor))
	require.False(t, IsLegal(models.EntityTypeLeaveRequest, models.RequestStatus("archived"), models.RequestStatusClosed))
	require.False(t, IsLegal(models.EntityTypeLeaveRequest, models.RequestStatusDraft, models.RequestStatus("archived")))
	require.Nil(t, LegalTransitions(models.EntityType("payslip"), models.RequestStatusDraft))
}

func TestDraftHasSingleSubmitEdge(t *testing.T) {
	for _, entityType := range EntityTypes() {
		forward := []Edge{}
		for _, edge := range LegalTransitions(entityType, models.RequestStatusDraft) {
			if !edge.To.IsTerminal() {
				forward = append(forward, edge)
			}
		}
		require.Len(t, forward, 1)
		require.Equal(t, models.RequestStatusPendingSupervisor, forward[0].To)
		require.Equal(t, models.ActorRoleRequester, forward[0].Actor)
	}
}
