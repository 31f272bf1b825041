package notificationhandler

import (
	log "github.com/sirupsen/logrus"

	"hotel-ops-backend/db"
	employeestore "hotel-ops-backend/lib/employee/store"
	notificationstore "hotel-ops-backend/lib/notification/store"
	"hotel-ops-backend/lib/smtp"
	connectionhub "hotel-ops-backend/lib/ws/hub/connection-hub"
	"hotel-ops-backend/models"
	notificationapimodels "hotel-ops-backend/models/api/notification"
	dbmodels "hotel-ops-backend/models/db"
	wsmodels "hotel-ops-backend/models/ws"
)

// Provider delivers workflow notification intents and serves the user's
// notification feed. Delivery is best-effort on every channel: a failure is
// logged and never surfaces to the transition that produced the intent.
type Provider interface {
	Notify(intents []models.NotificationIntent)
	ListForUser(propertyID, userID string, onlyUnread bool) ([]notificationapimodels.NotificationView, error)
	MarkRead(propertyID, userID, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store:     notificationstore.NewInstance(db.DB),
		employees: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store     notificationstore.Provider
	employees employeestore.Provider
}

func (i impl) Notify(intents []models.NotificationIntent) {
	for _, intent := range intents {
		i.deliver(intent)
	}
}

func (i impl) deliver(intent models.NotificationIntent) {
	logger := log.
		WithField("recipient_id", intent.RecipientID).
		WithField("request_id", intent.RequestID).
		WithField("template", intent.Template)
	msg := intent.Template.Message(intent.RequestNumber, intent.Title)

	rec := dbmodels.Notification{
		BasePropertyModel: dbmodels.BasePropertyModel{
			PropertyID: intent.PropertyID,
		},
		UserID:        intent.RecipientID,
		Template:      intent.Template,
		RequestID:     intent.RequestID,
		RequestNumber: intent.RequestNumber,
		Msg:           msg,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to store notification")
		return
	}
	logger = logger.WithField("notification_id", id)

	if connectionhub.Instance != nil {
		connectionhub.Instance.SendMessage(wsmodels.ServerMessage{
			ToUserID: intent.RecipientID,
			Time:     rec.CreatedAt.Format("02.01.2006 15:04:05"),
			Code:     string(intent.Template),
			Msg:      msg,
		})
	}

	i.sendEmail(intent, msg, logger)
}

func (i impl) sendEmail(intent models.NotificationIntent, msg string, logger *log.Entry) {
	if smtp.Instance == nil {
		return
	}
	recipient, err := i.employees.GetByID(intent.RecipientID)
	if err != nil {
		logger.WithError(err).Error("failed to load notification recipient")
		return
	}
	if recipient == nil || recipient.Email == "" || !recipient.EmailNotificationsEnabled {
		return
	}
	subject := "Request " + intent.RequestNumber
	if err := smtp.Instance.SendEMail(recipient.Email, msg, subject); err != nil {
		logger.WithError(err).Error("failed to send notification email")
	}
}

func (i impl) ListForUser(propertyID, userID string, onlyUnread bool) ([]notificationapimodels.NotificationView, error) {
	recs, err := i.store.List(propertyID, userID, onlyUnread)
	if err != nil {
		return nil, err
	}
	list := make([]notificationapimodels.NotificationView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, notificationapimodels.NotificationConvert(rec))
	}
	return list, nil
}

func (i impl) MarkRead(propertyID, userID, id string) error {
	return i.store.MarkRead(propertyID, userID, id)
}
