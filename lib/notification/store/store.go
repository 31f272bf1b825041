package notificationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hotel-ops-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Notification) (id string, err error)
	List(propertyID, userID string, onlyUnread bool) (list []dbmodels.Notification, err error)
	MarkRead(propertyID, userID, id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) (id string, err error) {
	err = i.db.
		Omit("Property").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(propertyID, userID string, onlyUnread bool) (list []dbmodels.Notification, err error) {
	list = []dbmodels.Notification{}
	tx := i.db.
		Where("property_id = ?", propertyID).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if onlyUnread {
		tx = tx.Where("is_read = false")
	}
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) MarkRead(propertyID, userID, id string) error {
	tx := i.db.
		Model(&dbmodels.Notification{}).
		Where("id = ?", id).
		Where("property_id = ?", propertyID).
		Where("user_id = ?", userID).
		Update("is_read", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("notification not found")
	}
	return nil
}
