package model

const (
	AttendanceStatusPresent    = "present"
	AttendanceStatusLate       = "late"
	AttendanceStatusAbsent     = "absent"
	AttendanceStatusEarlyLeave = "early-leave"
)

// Location is an optional geotag attached to an attendance mark.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// AttendanceRecord tracks one employee on one calendar date (YYYY-MM-DD).
// At most one record exists per (EmployeeID, Date) pair. EmployeeName and
// Department are denormalized from the employee at creation time.
// WorkHours is derived from CheckIn/CheckOut on every write.
type AttendanceRecord struct {
	ID           string    `json:"id"`
	EmployeeName string    `json:"employeeName"`
	EmployeeID   string    `json:"employeeId"`
	Department   string    `json:"department"`
	Date         string    `json:"date"`
	CheckIn      *string   `json:"checkIn"`
	CheckOut     *string   `json:"checkOut"`
	Status       string    `json:"status"`
	WorkHours    string    `json:"workHours"`
	Location     *Location `json:"location"`
}

// AttendanceMark is the upsert input keyed by (EmployeeID, Date).
type AttendanceMark struct {
	EmployeeID string    `json:"employeeId"`
	Date       string    `json:"date"`
	CheckIn    *string   `json:"checkIn"`
	CheckOut   *string   `json:"checkOut"`
	Status     string    `json:"status"`
	Location   *Location `json:"location"`
}
