package documentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hotel-ops-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.DocumentChange) (id string, err error)
	GetByID(propertyID, id string) (rec *dbmodels.DocumentChange, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.DocumentChange) (id string, err error) {
	err = i.db.
		Omit("Employee", "Property").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(propertyID, id string) (*dbmodels.DocumentChange, error) {
	rec := dbmodels.DocumentChange{}
	err := i.db.
		Where("id = ?", id).
		Where("property_id = ?", propertyID).
		Preload("Employee").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
