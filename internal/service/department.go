package service

import (
	"context"
	"time"

	"salom-api/internal/model"
	"salom-api/internal/store"
)

type DepartmentService struct {
	store *store.Store
}

func NewDepartmentService(st *store.Store) *DepartmentService {
	return &DepartmentService{store: st}
}

// List returns all departments in storage order.
func (s *DepartmentService) List(ctx context.Context) []model.Department {
	return s.store.LoadDepartments()
}

// Create adds a department under an existing district. The
// (departmentNumber, districtId) pair must be unique. The district name is
// denormalized onto the record at creation time.
func (s *DepartmentService) Create(ctx context.Context, in model.DepartmentInput) (*model.Department, error) {
	if in.Name == "" || in.DepartmentNumber == "" || in.DistrictID == "" || in.Manager == "" {
		return nil, errInvalid("request.missing_fields")
	}

	unlock := s.store.Lock(store.Districts, store.Departments)
	defer unlock()

	departments := s.store.LoadDepartments()
	for _, d := range departments {
		if d.DepartmentNumber == in.DepartmentNumber && d.DistrictID == in.DistrictID {
			return nil, errDuplicate("department.duplicate_number")
		}
	}

	var district *model.District
	for _, d := range s.store.LoadDistricts() {
		if d.ID == in.DistrictID {
			district = &d
			break
		}
	}
	if district == nil {
		return nil, errNotFound("district.not_found")
	}

	department := model.Department{
		ID:               newID(),
		Name:             in.Name,
		DepartmentNumber: in.DepartmentNumber,
		DistrictID:       in.DistrictID,
		DistrictName:     district.Name,
		Manager:          in.Manager,
		EmployeeCount:    0,
		Description:      in.Description,
		CreatedAt:        timestamp(time.Now()),
	}
	departments = append(departments, department)
	if err := s.store.SaveDepartments(departments); err != nil {
		return nil, err
	}
	return &department, nil
}

// Update merges the non-nil patch fields into the stored record. The
// denormalized districtName is only rewritten when the patch carries it.
func (s *DepartmentService) Update(ctx context.Context, id string, patch model.DepartmentPatch) (*model.Department, error) {
	unlock := s.store.Lock(store.Departments)
	defer unlock()

	departments := s.store.LoadDepartments()
	for i := range departments {
		if departments[i].ID != id {
			continue
		}
		d := &departments[i]
		if patch.Name != nil {
			d.Name = *patch.Name
		}
		if patch.DepartmentNumber != nil {
			d.DepartmentNumber = *patch.DepartmentNumber
		}
		if patch.DistrictID != nil {
			d.DistrictID = *patch.DistrictID
		}
		if patch.DistrictName != nil {
			d.DistrictName = *patch.DistrictName
		}
		if patch.Manager != nil {
			d.Manager = *patch.Manager
		}
		if patch.EmployeeCount != nil {
			d.EmployeeCount = *patch.EmployeeCount
		}
		if patch.Description != nil {
			d.Description = *patch.Description
		}
		if err := s.store.SaveDepartments(departments); err != nil {
			return nil, err
		}
		return d, nil
	}
	return nil, errNotFound("department.not_found")
}

// Delete removes a department unless employees still reference it.
// Deleting an absent id is a no-op success.
func (s *DepartmentService) Delete(ctx context.Context, id string) error {
	unlock := s.store.Lock(store.Departments, store.Employees)
	defer unlock()

	for _, emp := range s.store.LoadEmployees() {
		if emp.DepartmentID == id {
			return errConflict("department.has_employees")
		}
	}

	departments := s.store.LoadDepartments()
	kept := departments[:0]
	for _, d := range departments {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	return s.store.SaveDepartments(kept)
}
