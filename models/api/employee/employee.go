package employeeapimodels

import (
	"hotel-ops-backend/models"
	apimodels "hotel-ops-backend/models/api"
	dbmodels "hotel-ops-backend/models/db"
)

type EmployeeView struct {
	ID         string            `json:"id"`
	FullName   string            `json:"full_name"`
	Email      string            `json:"email"`
	Role       models.UserRole   `json:"role"`
	RoleName   string            `json:"role_name"`
	Status     models.UserStatus `json:"status"`
	Department string            `json:"department,omitempty"`
	JobTitle   string            `json:"job_title,omitempty"`
	ManagerID  *string           `json:"manager_id,omitempty"`
}

func EmployeeConvert(rec dbmodels.Employee) EmployeeView {
	return EmployeeView{
		ID:         rec.ID,
		FullName:   rec.GetFullName(),
		Email:      rec.Email,
		Role:       rec.Role,
		RoleName:   rec.Role.ToHuman(),
		Status:     rec.Status,
		Department: rec.Department,
		JobTitle:   rec.JobTitle,
		ManagerID:  rec.ManagerID,
	}
}

type EmployeeFilter struct {
	apimodels.Pagination
	Role   models.UserRole `json:"role,omitempty"`
	Search string          `json:"search,omitempty"`
}

func (r EmployeeFilter) Validate() error {
	return nil
}
