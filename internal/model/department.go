package model

// Department belongs to one district. DistrictName is denormalized from the
// district at creation time and is not kept in sync afterwards.
// EmployeeCount is maintained incrementally by employee create/delete.
type Department struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	DepartmentNumber string `json:"departmentNumber"`
	DistrictID       string `json:"districtId"`
	DistrictName     string `json:"districtName"`
	Manager          string `json:"manager"`
	EmployeeCount    int    `json:"employeeCount"`
	Description      string `json:"description"`
	CreatedAt        string `json:"createdAt"`
}

type DepartmentInput struct {
	Name             string `json:"name"`
	DepartmentNumber string `json:"departmentNumber"`
	DistrictID       string `json:"districtId"`
	Manager          string `json:"manager"`
	Description      string `json:"description"`
}

// DepartmentPatch is a partial update; nil fields are left untouched.
type DepartmentPatch struct {
	Name             *string `json:"name"`
	DepartmentNumber *string `json:"departmentNumber"`
	DistrictID       *string `json:"districtId"`
	DistrictName     *string `json:"districtName"`
	Manager          *string `json:"manager"`
	EmployeeCount    *int    `json:"employeeCount"`
	Description      *string `json:"description"`
}
