package model

const (
	EmployeeStatusActive   = "active"
	EmployeeStatusInactive = "inactive"
)

// Employee belongs to one department. DepartmentName, DepartmentNumber and
// DistrictName are denormalized from the department at creation time and are
// not refreshed when either side changes.
type Employee struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	Photo            string `json:"photo"`
	Position         string `json:"position"`
	DepartmentID     string `json:"departmentId"`
	DepartmentName   string `json:"departmentName"`
	DepartmentNumber string `json:"departmentNumber"`
	DistrictName     string `json:"districtName"`
	Email            string `json:"email"`
	Status           string `json:"status"`
	CreatedAt        string `json:"createdAt"`
}

type EmployeeInput struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Photo        string `json:"photo"`
	Position     string `json:"position"`
	DepartmentID string `json:"departmentId"`
	Email        string `json:"email"`
	Status       string `json:"status"`
}

// EmployeePatch is a partial update; nil fields are left untouched.
// Changing DepartmentID does not refresh the denormalized department fields
// or the employee counters.
type EmployeePatch struct {
	Name             *string `json:"name"`
	Phone            *string `json:"phone"`
	Photo            *string `json:"photo"`
	Position         *string `json:"position"`
	DepartmentID     *string `json:"departmentId"`
	DepartmentName   *string `json:"departmentName"`
	DepartmentNumber *string `json:"departmentNumber"`
	DistrictName     *string `json:"districtName"`
	Email            *string `json:"email"`
	Status           *string `json:"status"`
}
