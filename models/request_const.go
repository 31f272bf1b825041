package models

// EntityType discriminates which domain record a workflow request wraps and
// which transition graph applies to it.
type EntityType string

const (
	EntityTypeLeaveRequest   EntityType = "leave_request"
	EntityTypeDocumentChange EntityType = "document_change"
	EntityTypeTransfer       EntityType = "transfer"
)

var entityTypeHumanName = map[EntityType]string{
	EntityTypeLeaveRequest:   "Leave request",
	EntityTypeDocumentChange: "Document change",
	EntityTypeTransfer:       "Transfer request",
}

func (e EntityType) IsValid() bool {
	_, ok := entityTypeHumanName[e]
	return ok
}

func (e EntityType) ToHuman() string {
	if human, exist := entityTypeHumanName[e]; exist {
		return human
	}
	return string(e)
}

type RequestStatus string

const (
	RequestStatusDraft              RequestStatus = "draft"
	RequestStatusPendingSupervisor  RequestStatus = "pending_supervisor_approval"
	RequestStatusPendingHR          RequestStatus = "pending_hr_review"
	RequestStatusApproved           RequestStatus = "approved"
	RequestStatusRejected           RequestStatus = "rejected"
	RequestStatusReturned           RequestStatus = "returned_for_correction"
	RequestStatusClosed             RequestStatus = "closed"
)

var requestStatusHumanName = map[RequestStatus]string{
	RequestStatusDraft:             "Draft",
	RequestStatusPendingSupervisor: "Waiting for supervisor approval",
	RequestStatusPendingHR:         "Waiting for HR review",
	RequestStatusApproved:          "Approved",
	RequestStatusRejected:          "Rejected",
	RequestStatusReturned:          "Returned for correction",
	RequestStatusClosed:            "Closed",
}

var terminalRequestStatuses = map[RequestStatus]bool{
	RequestStatusApproved: true,
	RequestStatusRejected: true,
	RequestStatusClosed:   true,
}

func (s RequestStatus) IsValid() bool {
	_, ok := requestStatusHumanName[s]
	return ok
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s RequestStatus) IsTerminal() bool {
	return terminalRequestStatuses[s]
}

func (s RequestStatus) ToHuman() string {
	if human, exist := requestStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// ActorRole is the role class authorized to trigger a transition edge.
type ActorRole string

const (
	ActorRoleRequester  ActorRole = "requester"
	ActorRoleSupervisor ActorRole = "supervisor"
	ActorRoleHR         ActorRole = "hr"
	ActorRoleAdmin      ActorRole = "admin"
)
