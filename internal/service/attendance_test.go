package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salom-api/internal/model"
)

func attendanceFixture(t *testing.T) (*AttendanceService, *model.Employee) {
	t.Helper()
	st := newTestStore(t)
	district := seedDistrict(t, NewDistrictService(st), "Toshkent tumani", "TSH001")
	dept := seedDepartment(t, NewDepartmentService(st), "IT bo'limi", "IT-001", district.ID)
	emp := seedEmployee(t, NewEmployeeService(st), "Karimov Sardor", "+998901234567", dept.ID)
	return NewAttendanceService(st), emp
}

func TestAttendanceMarkCreatesRecord(t *testing.T) {
	svc, emp := attendanceFixture(t)
	ctx := context.Background()

	err := svc.Mark(ctx, model.AttendanceMark{
		EmployeeID: emp.ID,
		Date:       "2026-08-26",
		CheckIn:    strPtr("09:00"),
		CheckOut:   strPtr("18:00"),
		Status:     model.AttendanceStatusPresent,
		Location:   &model.Location{Latitude: 41.2995, Longitude: 69.2401, Address: "Toshkent"},
	})
	require.NoError(t, err)

	records := svc.ListByDate(ctx, "2026-08-26")
	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, emp.Name, rec.EmployeeName)
	assert.Equal(t, "IT bo'limi", rec.Department)
	assert.Equal(t, "8:00", rec.WorkHours)
	assert.NotEmpty(t, rec.ID)
}

func TestAttendanceMarkUpsertsPerEmployeeAndDate(t *testing.T) {
	svc, emp := attendanceFixture(t)
	ctx := context.Background()

	first := model.AttendanceMark{
		EmployeeID: emp.ID, Date: "2026-08-26",
		CheckIn: strPtr("09:15"), Status: model.AttendanceStatusLate,
	}
	require.NoError(t, svc.Mark(ctx, first))

	second := first
	second.CheckOut = strPtr("18:00")
	second.Status = model.AttendanceStatusPresent
	require.NoError(t, svc.Mark(ctx, second))

	// Still exactly one record for the pair, carrying the latest values.
	records := svc.ListByDate(ctx, "2026-08-26")
	require.Len(t, records, 1)
	assert.Equal(t, model.AttendanceStatusPresent, records[0].Status)
	assert.Equal(t, "7:45", records[0].WorkHours)

	// Another date is a separate record.
	third := first
	third.Date = "2026-08-27"
	require.NoError(t, svc.Mark(ctx, third))
	assert.Len(t, svc.ListByDate(ctx, "2026-08-27"), 1)
	assert.Len(t, svc.ListByDate(ctx, "2026-08-26"), 1)
}

func TestAttendanceMarkClearsClocksWhenAbsent(t *testing.T) {
	svc, emp := attendanceFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Mark(ctx, model.AttendanceMark{
		EmployeeID: emp.ID, Date: "2026-08-26",
		CheckIn: strPtr("09:00"), CheckOut: strPtr("18:00"),
		Status: model.AttendanceStatusPresent,
	}))
	require.NoError(t, svc.Mark(ctx, model.AttendanceMark{
		EmployeeID: emp.ID, Date: "2026-08-26",
		Status: model.AttendanceStatusAbsent,
	}))

	records := svc.ListByDate(ctx, "2026-08-26")
	require.Len(t, records, 1)
	assert.Nil(t, records[0].CheckIn)
	assert.Nil(t, records[0].CheckOut)
	assert.Equal(t, "0:00", records[0].WorkHours)
}

func TestAttendanceMarkUnknownEmployee(t *testing.T) {
	svc, _ := attendanceFixture(t)

	err := svc.Mark(context.Background(), model.AttendanceMark{
		EmployeeID: "missing", Date: "2026-08-26", Status: model.AttendanceStatusPresent,
	})
	assertKind(t, err, KindNotFound)
}

func TestAttendanceListByDateMatchesExactly(t *testing.T) {
	svc, emp := attendanceFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Mark(ctx, model.AttendanceMark{
		EmployeeID: emp.ID, Date: "2026-08-26", Status: model.AttendanceStatusPresent,
	}))

	// No fuzzy or partial matching on the date string.
	assert.Len(t, svc.ListByDate(ctx, "2026-08-26"), 1)
	assert.Empty(t, svc.ListByDate(ctx, "2026-08-2"))
	assert.Empty(t, svc.ListByDate(ctx, "2026-8-26"))
	assert.Empty(t, svc.ListByDate(ctx, ""))
}
