package db

import (
	"github.com/pkg/errors"

	dbmodels "hotel-ops-backend/models/db"
)

func AutoMigrateDB() error {
	err := DB.AutoMigrate(
		&dbmodels.Property{},
		&dbmodels.RequestCounter{},
		&dbmodels.Employee{},
		&dbmodels.Request{},
		&dbmodels.RequestHistory{},
		&dbmodels.LeaveRequest{},
		&dbmodels.DocumentChange{},
		&dbmodels.TransferRequest{},
		&dbmodels.Notification{},
	)
	if err != nil {
		return errors.Wrap(err, "migration failed")
	}
	return nil
}
