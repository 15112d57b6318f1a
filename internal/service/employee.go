package service

import (
	"context"
	"time"

	"salom-api/internal/model"
	"salom-api/internal/store"
)

type EmployeeService struct {
	store *store.Store
}

func NewEmployeeService(st *store.Store) *EmployeeService {
	return &EmployeeService{store: st}
}

// List returns all employees in storage order.
func (s *EmployeeService) List(ctx context.Context) []model.Employee {
	return s.store.LoadEmployees()
}

// Create adds an employee under an existing department. The phone number
// must be unique across employees. Department name/number and district name
// are denormalized onto the record, and the department's employeeCount is
// incremented as a second write (not atomic with the first).
func (s *EmployeeService) Create(ctx context.Context, in model.EmployeeInput) (*model.Employee, error) {
	if in.Name == "" || in.Phone == "" || in.Position == "" || in.DepartmentID == "" {
		return nil, errInvalid("request.missing_fields")
	}
	if in.Status == "" {
		in.Status = model.EmployeeStatusActive
	}

	unlock := s.store.Lock(store.Departments, store.Employees)
	defer unlock()

	employees := s.store.LoadEmployees()
	for _, e := range employees {
		if e.Phone == in.Phone {
			return nil, errDuplicate("employee.duplicate_phone")
		}
	}

	departments := s.store.LoadDepartments()
	deptIdx := -1
	for i := range departments {
		if departments[i].ID == in.DepartmentID {
			deptIdx = i
			break
		}
	}
	if deptIdx < 0 {
		return nil, errNotFound("department.not_found")
	}
	dept := departments[deptIdx]

	employee := model.Employee{
		ID:               newID(),
		Name:             in.Name,
		Phone:            in.Phone,
		Photo:            in.Photo,
		Position:         in.Position,
		DepartmentID:     in.DepartmentID,
		DepartmentName:   dept.Name,
		DepartmentNumber: dept.DepartmentNumber,
		DistrictName:     dept.DistrictName,
		Email:            in.Email,
		Status:           in.Status,
		CreatedAt:        timestamp(time.Now()),
	}
	employees = append(employees, employee)
	if err := s.store.SaveEmployees(employees); err != nil {
		return nil, err
	}

	departments[deptIdx].EmployeeCount++
	if err := s.store.SaveDepartments(departments); err != nil {
		return nil, err
	}
	return &employee, nil
}

// Update merges the non-nil patch fields into the stored record. The
// denormalized department fields and the employee counters are NOT
// recomputed, even when the patch moves the employee to another department.
func (s *EmployeeService) Update(ctx context.Context, id string, patch model.EmployeePatch) (*model.Employee, error) {
	unlock := s.store.Lock(store.Employees)
	defer unlock()

	employees := s.store.LoadEmployees()
	for i := range employees {
		if employees[i].ID != id {
			continue
		}
		e := &employees[i]
		if patch.Name != nil {
			e.Name = *patch.Name
		}
		if patch.Phone != nil {
			e.Phone = *patch.Phone
		}
		if patch.Photo != nil {
			e.Photo = *patch.Photo
		}
		if patch.Position != nil {
			e.Position = *patch.Position
		}
		if patch.DepartmentID != nil {
			e.DepartmentID = *patch.DepartmentID
		}
		if patch.DepartmentName != nil {
			e.DepartmentName = *patch.DepartmentName
		}
		if patch.DepartmentNumber != nil {
			e.DepartmentNumber = *patch.DepartmentNumber
		}
		if patch.DistrictName != nil {
			e.DistrictName = *patch.DistrictName
		}
		if patch.Email != nil {
			e.Email = *patch.Email
		}
		if patch.Status != nil {
			e.Status = *patch.Status
		}
		if err := s.store.SaveEmployees(employees); err != nil {
			return nil, err
		}
		return e, nil
	}
	return nil, errNotFound("employee.not_found")
}

// Delete removes an employee and decrements the owning department's
// employeeCount, floored at zero. Unlike district/department deletes this
// one reports not-found: the record must resolve to locate its department.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	unlock := s.store.Lock(store.Departments, store.Employees)
	defer unlock()

	employees := s.store.LoadEmployees()
	var removed *model.Employee
	kept := make([]model.Employee, 0, len(employees))
	for _, e := range employees {
		if e.ID == id {
			removed = &e
			continue
		}
		kept = append(kept, e)
	}
	if removed == nil {
		return errNotFound("employee.not_found")
	}
	if err := s.store.SaveEmployees(kept); err != nil {
		return err
	}

	departments := s.store.LoadDepartments()
	for i := range departments {
		if departments[i].ID == removed.DepartmentID {
			if departments[i].EmployeeCount > 0 {
				departments[i].EmployeeCount--
			}
			return s.store.SaveDepartments(departments)
		}
	}
	return nil
}
