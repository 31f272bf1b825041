package models

type UserRole string

const (
	EmployeeRole      UserRole = "EMPLOYEE"
	SupervisorRole    UserRole = "SUPERVISOR"
	HRRole            UserRole = "HR"
	PropertyAdminRole UserRole = "PROPERTY_ADMIN"
)

var roleHumanName = map[UserRole]string{
	EmployeeRole:      "Employee",
	SupervisorRole:    "Supervisor",
	HRRole:            "HR manager",
	PropertyAdminRole: "Property administrator",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsPropertyAdmin() bool {
	return r == PropertyAdminRole
}

const SystemUser = "system"

type UserStatus string

const (
	UserWorkingStatus   UserStatus = "WORKING"
	UserOnLeaveStatus   UserStatus = "ON_LEAVE"
	UserDismissedStatus UserStatus = "DISMISSED"
)

var userStatusHumanName = map[UserStatus]string{
	UserWorkingStatus:   "Working",
	UserOnLeaveStatus:   "On leave",
	UserDismissedStatus: "Dismissed",
}

func (r UserStatus) ToHuman() string {
	if human, exist := userStatusHumanName[r]; exist {
		return human
	}
	return string(r)
}
