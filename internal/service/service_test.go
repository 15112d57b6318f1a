package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"salom-api/internal/model"
	"salom-api/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.New(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	return st
}

// assertKind requires err to be a domain error of the given kind.
func assertKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, kind, svcErr.Kind)
}

// seedDistrict creates a district and fails the test on error.
func seedDistrict(t *testing.T, svc *DistrictService, name, code string) *model.District {
	t.Helper()
	d, err := svc.Create(context.Background(), model.DistrictInput{Name: name, Code: code})
	require.NoError(t, err)
	return d
}

// seedDepartment creates a department under the given district.
func seedDepartment(t *testing.T, svc *DepartmentService, name, number, districtID string) *model.Department {
	t.Helper()
	d, err := svc.Create(context.Background(), model.DepartmentInput{
		Name:             name,
		DepartmentNumber: number,
		DistrictID:       districtID,
		Manager:          "Karimov Sardor",
	})
	require.NoError(t, err)
	return d
}

// seedEmployee creates an employee under the given department.
func seedEmployee(t *testing.T, svc *EmployeeService, name, phone, departmentID string) *model.Employee {
	t.Helper()
	e, err := svc.Create(context.Background(), model.EmployeeInput{
		Name:         name,
		Phone:        phone,
		Position:     "Mutaxassis",
		DepartmentID: departmentID,
	})
	require.NoError(t, err)
	return e
}
