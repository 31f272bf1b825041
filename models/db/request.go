package dbmodels

import (
	"hotel-ops-backend/models"
)

// Request is the workflow envelope tracking approval status for a domain
// action. The domain record itself (leave request, document change, ...)
// lives in its own table and is referenced by EntityType+EntityID, set once
// at creation.
type Request struct {
	BasePropertyModel
	RequestNumber     string            `gorm:"type:varchar(36);uniqueIndex:idx_requests_number"`
	EntityType        models.EntityType `gorm:"type:varchar(100);index"`
	EntityID          string            `gorm:"type:varchar(36)"`
	Title             string            `gorm:"type:varchar(255)"`
	RequesterID       string            `gorm:"type:varchar(36);index"`
	Requester         *Employee         `gorm:"foreignKey:RequesterID"`
	Status            models.RequestStatus `gorm:"type:varchar(100);index"`
	CurrentAssigneeID *string           `gorm:"type:varchar(36);index"`
	CurrentAssignee   *Employee         `gorm:"foreignKey:CurrentAssigneeID"`
	// Version guards concurrent transitions: every mutation is conditioned
	// on the version read and bumps it by one.
	Version int64 `gorm:"not null;default:1"`

	History []RequestHistory `gorm:"foreignKey:RequestID"`
}

// RequestHistory is the append-only transition log. Rows are only ever
// inserted; status and assignee of the owning Request are derivable from the
// latest entry.
type RequestHistory struct {
	BasePropertyModel
	RequestID  string               `gorm:"type:varchar(36);index"`
	FromStatus models.RequestStatus `gorm:"type:varchar(100)"`
	ToStatus   models.RequestStatus `gorm:"type:varchar(100)"`
	ActorID    string               `gorm:"type:varchar(36)"`
	Actor      *Employee            `gorm:"foreignKey:ActorID"`
	Note       string
}
