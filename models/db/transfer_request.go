package dbmodels

import "time"

type TransferRequest struct {
	BasePropertyModel
	EmployeeID       string    `gorm:"type:varchar(36);index"`
	Employee         *Employee `gorm:"foreignKey:EmployeeID"`
	TargetPropertyID string    `gorm:"type:varchar(36)"`
	TargetProperty   *Property `gorm:"foreignKey:TargetPropertyID"`
	TargetDepartment string    `gorm:"type:varchar(255)"`
	EffectiveDate    time.Time `gorm:"type:date"`
	Reason           string
}
