package employeehandler

import (
	"github.com/pkg/errors"

	"hotel-ops-backend/db"
	employeestore "hotel-ops-backend/lib/employee/store"
	workflowerrors "hotel-ops-backend/lib/workflow/errors"
	employeeapimodels "hotel-ops-backend/models/api/employee"
)

// Read-only employee directory. Employee records are mastered by the HR
// system and only consumed here.
type Provider interface {
	GetByID(propertyID, id string) (employeeapimodels.EmployeeView, error)
	List(propertyID string, filter employeeapimodels.EmployeeFilter) (list []employeeapimodels.EmployeeView, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		store: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store employeestore.Provider
}

func (i impl) GetByID(propertyID, id string) (employeeapimodels.EmployeeView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	if rec == nil || rec.PropertyID != propertyID {
		return employeeapimodels.EmployeeView{}, errors.Wrapf(workflowerrors.ErrNotFound, "employee %v", id)
	}
	return employeeapimodels.EmployeeConvert(*rec), nil
}

func (i impl) List(propertyID string, filter employeeapimodels.EmployeeFilter) ([]employeeapimodels.EmployeeView, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, errors.Wrapf(workflowerrors.ErrValidation, "%v", err)
	}
	recs, err := i.store.List(propertyID, filter)
	if err != nil {
		return nil, 0, err
	}
	rowCount, err := i.store.ListCount(propertyID, filter)
	if err != nil {
		return nil, 0, err
	}
	list := make([]employeeapimodels.EmployeeView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, employeeapimodels.EmployeeConvert(rec))
	}
	return list, rowCount, nil
}
