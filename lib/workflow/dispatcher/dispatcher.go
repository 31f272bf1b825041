package dispatcher

import (
	"hotel-ops-backend/models"
	dbmodels "hotel-ops-backend/models/db"
)

// Dispatch translates a committed transition into notification intents.
// Pure function of its inputs: no side effects, no delivery. The caller
// persists and sends the intents best-effort; a delivery failure never rolls
// back the transition.
//
// Rules: the new assignee is told about forward progress; the requester is
// told about rejection, return-for-correction, final approval and
// administrative close. Nobody is notified about their own action.
func Dispatch(rec dbmodels.Request, prevStatus models.RequestStatus, actorID string) []models.NotificationIntent {
	intents := []models.NotificationIntent{}

	intent := func(recipientID string, template models.NotificationTemplate) models.NotificationIntent {
		return models.NotificationIntent{
			PropertyID:    rec.PropertyID,
			RecipientID:   recipientID,
			Template:      template,
			RequestID:     rec.ID,
			RequestNumber: rec.RequestNumber,
			Title:         rec.Title,
		}
	}

	switch rec.Status {
	case models.RequestStatusApproved:
		if rec.RequesterID != actorID {
			intents = append(intents, intent(rec.RequesterID, models.NotifyRequestApproved))
		}
	case models.RequestStatusRejected:
		if rec.RequesterID != actorID {
			intents = append(intents, intent(rec.RequesterID, models.NotifyRequestRejected))
		}
	case models.RequestStatusReturned:
		if rec.RequesterID != actorID {
			intents = append(intents, intent(rec.RequesterID, models.NotifyRequestReturned))
		}
	case models.RequestStatusClosed:
		if rec.RequesterID != actorID {
			intents = append(intents, intent(rec.RequesterID, models.NotifyRequestClosed))
		}
	default:
		if rec.CurrentAssigneeID != nil && *rec.CurrentAssigneeID != actorID {
			intents = append(intents, intent(*rec.CurrentAssigneeID, models.NotifyApprovalRequested))
		}
	}
	return intents
}
