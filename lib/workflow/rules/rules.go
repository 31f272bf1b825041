package rules

import "hotel-ops-backend/models"

// Edge is a single legal move in a request's transition graph, together with
// the role class allowed to trigger it. The tables below are the single
// source of truth for transition legality; a missing edge is a normal
// "not allowed" result, never an error.
type Edge struct {
	To    models.RequestStatus
	Actor models.ActorRole
}

type graph map[models.RequestStatus][]Edge

// approvalChain is the shared supervisor -> HR chain. All current entity
// types use it; a type needing its own graph gets its own entry in tables.
var approvalChain = graph{
	models.RequestStatusDraft: {
		{To: models.RequestStatusPendingSupervisor, Actor: models.ActorRoleRequester},
		{To: models.RequestStatusClosed, Actor: models.ActorRoleAdmin},
	},
	models.RequestStatusPendingSupervisor: {
		{To: models.RequestStatusPendingHR, Actor: models.ActorRoleSupervisor},
		{To: models.RequestStatusRejected, Actor: models.ActorRoleSupervisor},
		{To: models.RequestStatusReturned, Actor: models.ActorRoleSupervisor},
		{To: models.RequestStatusClosed, Actor: models.ActorRoleAdmin},
	},
	models.RequestStatusPendingHR: {
		{To: models.RequestStatusApproved, Actor: models.ActorRoleHR},
		{To: models.RequestStatusRejected, Actor: models.ActorRoleHR},
		{To: models.RequestStatusReturned, Actor: models.ActorRoleHR},
		{To: models.RequestStatusClosed, Actor: models.ActorRoleAdmin},
	},
	models.RequestStatusReturned: {
		{To: models.RequestStatusPendingSupervisor, Actor: models.ActorRoleRequester},
		{To: models.RequestStatusClosed, Actor: models.ActorRoleAdmin},
	},
}

var tables = map[models.EntityType]graph{
	models.EntityTypeLeaveRequest:   approvalChain,
	models.EntityTypeDocumentChange: approvalChain,
	models.EntityTypeTransfer:       approvalChain,
}

// LegalTransitions returns the outgoing edges for the given entity type and
// status. Unknown combinations return nil.
func LegalTransitions(entityType models.EntityType, from models.RequestStatus) []Edge {
	table, ok := tables[entityType]
	if !ok {
		return nil
	}
	return table[from]
}

// Lookup finds the edge for a concrete from->to move.
func Lookup(entityType models.EntityType, from, to models.RequestStatus) (Edge, bool) {
	for _, edge := range LegalTransitions(entityType, from) {
		if edge.To == to {
			return edge, true
		}
	}
	return Edge{}, false
}

// IsLegal is a pure lookup; unknown combinations are illegal, not errors.
func IsLegal(entityType models.EntityType, from, to models.RequestStatus) bool {
	_, ok := Lookup(entityType, from, to)
	return ok
}

// EntityTypes lists every entity type with a registered transition graph.
func EntityTypes() []models.EntityType {
	result := make([]models.EntityType, 0, len(tables))
	for entityType := range tables {
		result = append(result, entityType)
	}
	return result
}

// Statuses lists every status appearing in the given entity type's graph,
// as a source or a target.
func Statuses(entityType models.EntityType) []models.RequestStatus {
	table, ok := tables[entityType]
	if !ok {
		return nil
	}
	seen := map[models.RequestStatus]bool{}
	result := []models.RequestStatus{}
	add := func(status models.RequestStatus) {
		if !seen[status] {
			seen[status] = true
			result = append(result, status)
		}
	}
	for from, edges := range table {
		add(from)
		for _, edge := range edges {
			add(edge.To)
		}
	}
	return result
}
