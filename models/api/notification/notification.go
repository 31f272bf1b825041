package notificationapimodels

import (
	"time"

	"hotel-ops-backend/models"
	dbmodels "hotel-ops-backend/models/db"
)

type NotificationView struct {
	ID            string                      `json:"id"`
	Template      models.NotificationTemplate `json:"template"`
	RequestID     string                      `json:"request_id"`
	RequestNumber string                      `json:"request_number"`
	Msg           string                      `json:"msg"`
	IsRead        bool                        `json:"is_read"`
	Date          time.Time                   `json:"date"`
}

func NotificationConvert(rec dbmodels.Notification) NotificationView {
	return NotificationView{
		ID:            rec.ID,
		Template:      rec.Template,
		RequestID:     rec.RequestID,
		RequestNumber: rec.RequestNumber,
		Msg:           rec.Msg,
		IsRead:        rec.IsRead,
		Date:          rec.CreatedAt,
	}
}
