package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salom-api/internal/model"
)

func TestDepartmentCreate(t *testing.T) {
	st := newTestStore(t)
	districtSvc := NewDistrictService(st)
	svc := NewDepartmentService(st)
	ctx := context.Background()

	district := seedDistrict(t, districtSvc, "Toshkent tumani", "TSH001")
	other := seedDistrict(t, districtSvc, "Samarqand tumani", "SMQ001")

	created := seedDepartment(t, svc, "IT bo'limi", "IT-001", district.ID)
	assert.Equal(t, "Toshkent tumani", created.DistrictName)
	assert.Zero(t, created.EmployeeCount)

	// Same number under the same district collides.
	_, err := svc.Create(ctx, model.DepartmentInput{
		Name: "Boshqa bo'lim", DepartmentNumber: "IT-001", DistrictID: district.ID, Manager: "X",
	})
	assertKind(t, err, KindDuplicate)

	// The pair is scoped per district, so the number is reusable elsewhere.
	_, err = svc.Create(ctx, model.DepartmentInput{
		Name: "IT bo'limi", DepartmentNumber: "IT-001", DistrictID: other.ID, Manager: "X",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, model.DepartmentInput{
		Name: "Yetim bo'lim", DepartmentNumber: "OR-001", DistrictID: "missing", Manager: "X",
	})
	assertKind(t, err, KindNotFound)
}

func TestDepartmentUpdate(t *testing.T) {
	st := newTestStore(t)
	districtSvc := NewDistrictService(st)
	svc := NewDepartmentService(st)
	ctx := context.Background()

	district := seedDistrict(t, districtSvc, "Toshkent tumani", "TSH001")
	created := seedDepartment(t, svc, "IT bo'limi", "IT-001", district.ID)

	manager := "Toshmatov Oybek"
	updated, err := svc.Update(ctx, created.ID, model.DepartmentPatch{Manager: &manager})
	require.NoError(t, err)
	assert.Equal(t, manager, updated.Manager)
	assert.Equal(t, "IT bo'limi", updated.Name)

	_, err = svc.Update(ctx, "missing-id", model.DepartmentPatch{Manager: &manager})
	assertKind(t, err, KindNotFound)
}

func TestDepartmentDelete(t *testing.T) {
	st := newTestStore(t)
	districtSvc := NewDistrictService(st)
	svc := NewDepartmentService(st)
	employeeSvc := NewEmployeeService(st)
	ctx := context.Background()

	district := seedDistrict(t, districtSvc, "Toshkent tumani", "TSH001")
	staffed := seedDepartment(t, svc, "IT bo'limi", "IT-001", district.ID)
	vacant := seedDepartment(t, svc, "Moliya bo'limi", "FIN-001", district.ID)
	seedEmployee(t, employeeSvc, "Karimov Sardor", "+998901234567", staffed.ID)

	err := svc.Delete(ctx, staffed.ID)
	assertKind(t, err, KindConflict)

	require.NoError(t, svc.Delete(ctx, vacant.ID))
	require.NoError(t, svc.Delete(ctx, vacant.ID)) // idempotent
	assert.Len(t, svc.List(ctx), 1)
}

func TestDepartmentRenameDoesNotPropagate(t *testing.T) {
	// Denormalized names drift after a rename on purpose.
	st := newTestStore(t)
	districtSvc := NewDistrictService(st)
	svc := NewDepartmentService(st)
	employeeSvc := NewEmployeeService(st)
	ctx := context.Background()

	district := seedDistrict(t, districtSvc, "Toshkent tumani", "TSH001")
	dept := seedDepartment(t, svc, "IT bo'limi", "IT-001", district.ID)
	emp := seedEmployee(t, employeeSvc, "Karimov Sardor", "+998901234567", dept.ID)

	name := "Raqamli texnologiyalar bo'limi"
	_, err := svc.Update(ctx, dept.ID, model.DepartmentPatch{Name: &name})
	require.NoError(t, err)

	employees := employeeSvc.List(ctx)
	require.Len(t, employees, 1)
	assert.Equal(t, emp.DepartmentName, employees[0].DepartmentName)
	assert.Equal(t, "IT bo'limi", employees[0].DepartmentName)
}
