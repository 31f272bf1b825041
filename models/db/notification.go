package dbmodels

import "hotel-ops-backend/models"

type Notification struct {
	BasePropertyModel
	UserID        string                       `gorm:"type:varchar(36);index"`
	Template      models.NotificationTemplate `gorm:"type:varchar(100)"`
	RequestID     string                       `gorm:"type:varchar(36);index"`
	RequestNumber string                       `gorm:"type:varchar(36)"`
	Msg           string
	IsRead        bool `gorm:"index"`
}
