package models

import "fmt"

// NotificationTemplate is the kind of message a notification intent carries.
// Rendering is done at dispatch time; delivery channels are free to reuse
// the rendered text.
type NotificationTemplate string

const (
	NotifyApprovalRequested NotificationTemplate = "approval_requested"
	NotifyRequestApproved   NotificationTemplate = "request_approved"
	NotifyRequestRejected   NotificationTemplate = "request_rejected"
	NotifyRequestReturned   NotificationTemplate = "request_returned"
	NotifyRequestClosed     NotificationTemplate = "request_closed"
)

var notificationMessage = map[NotificationTemplate]string{
	NotifyApprovalRequested: "Request %v (%v) is waiting for your decision",
	NotifyRequestApproved:   "Request %v (%v) has been approved",
	NotifyRequestRejected:   "Request %v (%v) has been rejected",
	NotifyRequestReturned:   "Request %v (%v) was returned for correction",
	NotifyRequestClosed:     "Request %v (%v) has been closed",
}

func (t NotificationTemplate) Message(requestNumber, title string) string {
	format, exist := notificationMessage[t]
	if !exist {
		return fmt.Sprintf("Request %v (%v) was updated", requestNumber, title)
	}
	return fmt.Sprintf(format, requestNumber, title)
}

// NotificationIntent describes who should be told what about a request,
// decoupled from the delivery mechanism.
type NotificationIntent struct {
	PropertyID    string
	RecipientID   string
	Template      NotificationTemplate
	RequestID     string
	RequestNumber string
	Title         string
}
