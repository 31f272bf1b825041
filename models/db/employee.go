package dbmodels

import "hotel-ops-backend/models"

type Employee struct {
	BasePropertyModel
	FirstName  string `gorm:"type:varchar(255)"`
	LastName   string `gorm:"type:varchar(255)"`
	Email      string `gorm:"type:varchar(255)"`
	Role       models.UserRole   `gorm:"type:varchar(100)"`
	Status     models.UserStatus `gorm:"type:varchar(100)"`
	Department string `gorm:"type:varchar(255)"`
	JobTitle   string `gorm:"type:varchar(255)"`
	ManagerID  *string   `gorm:"type:varchar(36)"`
	Manager    *Employee `gorm:"foreignKey:ManagerID"`
	EmailNotificationsEnabled bool `gorm:"default:true"`
}

func (e Employee) GetFullName() string {
	return e.FirstName + " " + e.LastName
}
