package dbmodels

type DocumentChange struct {
	BasePropertyModel
	EmployeeID   string    `gorm:"type:varchar(36);index"`
	Employee     *Employee `gorm:"foreignKey:EmployeeID"`
	DocumentName string    `gorm:"type:varchar(255)"`
	Summary      string
	RevisionNote string
}
