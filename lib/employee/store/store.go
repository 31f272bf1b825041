package employeestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"hotel-ops-backend/models"
	employeeapimodels "hotel-ops-backend/models/api/employee"
	dbmodels "hotel-ops-backend/models/db"
)

type Provider interface {
	GetByID(id string) (rec *dbmodels.Employee, err error)
	// GetManager returns the direct manager of the given employee, nil when
	// none is on file.
	GetManager(id string) (rec *dbmodels.Employee, err error)
	// GetHRApprover returns the property's acting HR approver: the earliest
	// created working employee with the HR role.
	GetHRApprover(propertyID string) (rec *dbmodels.Employee, err error)
	List(propertyID string, filter employeeapimodels.EmployeeFilter) (list []dbmodels.Employee, err error)
	ListCount(propertyID string, filter employeeapimodels.EmployeeFilter) (rowCount int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByID(id string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) GetManager(id string) (*dbmodels.Employee, error) {
	rec, err := i.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.ManagerID == nil {
		return nil, nil
	}
	return i.GetByID(*rec.ManagerID)
}

func (i impl) GetHRApprover(propertyID string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Where("property_id = ?", propertyID).
		Where("role = ?", models.HRRole).
		Where("status = ?", models.UserWorkingStatus).
		Order("created_at ASC").
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

func (i impl) List(propertyID string, filter employeeapimodels.EmployeeFilter) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	tx := i.applyFilter(propertyID, filter).
		Order("last_name ASC, first_name ASC")
	page, limit := filter.GetPage()
	tx = tx.Offset((page - 1) * limit).Limit(limit)
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(propertyID string, filter employeeapimodels.EmployeeFilter) (rowCount int64, err error) {
	err = i.applyFilter(propertyID, filter).Count(&rowCount).Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) applyFilter(propertyID string, filter employeeapimodels.EmployeeFilter) *gorm.DB {
	tx := i.db.
		Model(&dbmodels.Employee{}).
		Where("property_id = ?", propertyID)
	if filter.Role != "" {
		tx = tx.Where("role = ?", filter.Role)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		tx = tx.Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?", pattern, pattern, pattern)
	}
	return tx
}
