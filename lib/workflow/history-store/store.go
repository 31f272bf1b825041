package workflowhistorystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hotel-ops-backend/models/db"
)

// The history log is append-only: there is deliberately no update or delete.
type Provider interface {
	Create(rec dbmodels.RequestHistory) (id string, err error)
	List(propertyID, requestID string) (list []dbmodels.RequestHistory, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.RequestHistory) (id string, err error) {
	err = i.db.
		Omit("Actor", "Property").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(propertyID, requestID string) (list []dbmodels.RequestHistory, err error) {
	list = []dbmodels.RequestHistory{}
	tx := i.db.
		Where("property_id = ?", propertyID).
		Where("request_id = ?", requestID).
		Order("created_at ASC").
		Preload("Actor")
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
