package service

import (
	"context"

	"salom-api/internal/model"
	"salom-api/internal/store"
)

type AttendanceService struct {
	store *store.Store
}

func NewAttendanceService(st *store.Store) *AttendanceService {
	return &AttendanceService{store: st}
}

// ListByDate returns the records whose date equals the query string exactly.
// No parsing or normalization happens on either side of the comparison.
func (s *AttendanceService) ListByDate(ctx context.Context, date string) []model.AttendanceRecord {
	records := s.store.LoadAttendance()
	filtered := make([]model.AttendanceRecord, 0, len(records))
	for _, r := range records {
		if r.Date == date {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Mark upserts the attendance record for (employeeId, date). An existing
// record takes the incoming checkIn/checkOut/status/location as-is (absent
// clock values clear the stored ones) and gets its workHours recomputed;
// otherwise a new record is created with the employee's name and department
// denormalized onto it.
func (s *AttendanceService) Mark(ctx context.Context, in model.AttendanceMark) error {
	if in.EmployeeID == "" || in.Date == "" || in.Status == "" {
		return errInvalid("request.missing_fields")
	}

	unlock := s.store.Lock(store.Employees, store.Attendance)
	defer unlock()

	var employee *model.Employee
	for _, e := range s.store.LoadEmployees() {
		if e.ID == in.EmployeeID {
			employee = &e
			break
		}
	}
	if employee == nil {
		return errNotFound("employee.not_found")
	}

	records := s.store.LoadAttendance()
	for i := range records {
		if records[i].EmployeeID == in.EmployeeID && records[i].Date == in.Date {
			records[i].CheckIn = in.CheckIn
			records[i].CheckOut = in.CheckOut
			records[i].Status = in.Status
			records[i].Location = in.Location
			records[i].WorkHours = CalculateWorkHours(in.CheckIn, in.CheckOut)
			return s.store.SaveAttendance(records)
		}
	}

	records = append(records, model.AttendanceRecord{
		ID:           newID(),
		EmployeeName: employee.Name,
		EmployeeID:   in.EmployeeID,
		Department:   employee.DepartmentName,
		Date:         in.Date,
		CheckIn:      in.CheckIn,
		CheckOut:     in.CheckOut,
		Status:       in.Status,
		WorkHours:    CalculateWorkHours(in.CheckIn, in.CheckOut),
		Location:     in.Location,
	})
	return s.store.SaveAttendance(records)
}
