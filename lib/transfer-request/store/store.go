package transferstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hotel-ops-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.TransferRequest) (id string, err error)
	GetByID(propertyID, id string) (rec *dbmodels.TransferRequest, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.TransferRequest) (id string, err error) {
	err = i.db.
		Omit("Employee", "Property", "TargetProperty").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(propertyID, id string) (*dbmodels.TransferRequest, error) {
	rec := dbmodels.TransferRequest{}
	err := i.db.
		Where("id = ?", id).
		Where("property_id = ?", propertyID).
		Preload("Employee").
		Preload("TargetProperty").
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
