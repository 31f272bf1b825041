package dbmodels

type Property struct {
	BaseModel
	Name     string `gorm:"type:varchar(255)"`
	City     string `gorm:"type:varchar(255)"`
	Timezone string `gorm:"type:varchar(100)"`
}

// RequestCounter backs per-property request number allocation.
type RequestCounter struct {
	PropertyID string `gorm:"primaryKey;type:varchar(36)"`
	LastNumber int64
}
