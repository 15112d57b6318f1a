package model

// Statistics is the aggregate returned by GET /statistics. Overview,
// Attendance and DepartmentData are computed from current collections;
// AttendanceData, PerformanceData and Insights are illustrative placeholders
// for the dashboard, not live metrics.
type Statistics struct {
	Overview        Overview          `json:"overview"`
	Attendance      AttendanceSummary `json:"attendance"`
	Trends          Trends            `json:"trends"`
	AttendanceData  []DayAttendance   `json:"attendanceData"`
	DepartmentData  []DepartmentSlice `json:"departmentData"`
	PerformanceData []MonthlyScore    `json:"performanceData"`
	Insights        []Insight         `json:"insights"`
}

type Overview struct {
	TotalEmployees   int `json:"totalEmployees"`
	ActiveEmployees  int `json:"activeEmployees"`
	TotalDepartments int `json:"totalDepartments"`
	TotalDistricts   int `json:"totalDistricts"`
}

// AttendanceSummary covers the current date only.
type AttendanceSummary struct {
	Total      int     `json:"total"`
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Late       int     `json:"late"`
	Percentage float64 `json:"percentage"`
}

type Trend struct {
	Current float64 `json:"current"`
	Change  float64 `json:"change"`
}

type Trends struct {
	Attendance   Trend `json:"attendance"`
	Late         Trend `json:"late"`
	Efficiency   Trend `json:"efficiency"`
	Satisfaction Trend `json:"satisfaction"`
}

type DayAttendance struct {
	Name    string `json:"name"`
	Present int    `json:"present"`
	Absent  int    `json:"absent"`
	Late    int    `json:"late"`
}

// DepartmentSlice is one wedge of the department breakdown chart.
type DepartmentSlice struct {
	Name       string `json:"name"`
	Value      int    `json:"value"`
	Color      string `json:"color"`
	DistrictID string `json:"districtId"`
}

type MonthlyScore struct {
	Month        string `json:"month"`
	Efficiency   int    `json:"efficiency"`
	Satisfaction int    `json:"satisfaction"`
}

type Insight struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
