package store

import (
	"time"

	"go.uber.org/zap"

	"salom-api/internal/model"
)

// Seed writes the illustrative dataset for every collection whose backing
// file does not exist yet. It runs once at startup and never rewrites an
// existing file, so operator data always survives restarts.
func Seed(s *Store, now time.Time) error {
	if !s.Exists(Districts) {
		if err := s.SaveDistricts(seedDistricts()); err != nil {
			return err
		}
		s.log.Info("seeded collection", zap.String("collection", Districts))
	}
	if !s.Exists(Departments) {
		if err := s.SaveDepartments(seedDepartments()); err != nil {
			return err
		}
		s.log.Info("seeded collection", zap.String("collection", Departments))
	}
	if !s.Exists(Employees) {
		if err := s.SaveEmployees(seedEmployees()); err != nil {
			return err
		}
		s.log.Info("seeded collection", zap.String("collection", Employees))
	}
	if !s.Exists(Attendance) {
		if err := s.SaveAttendance(seedAttendance(now)); err != nil {
			return err
		}
		s.log.Info("seeded collection", zap.String("collection", Attendance))
	}
	return nil
}

func seedDistricts() []model.District {
	return []model.District{
		{
			ID:          "1",
			Name:        "Toshkent tumani",
			Code:        "TSH001",
			Description: "Markaziy ofis joylashgan tuman",
			CreatedAt:   "2024-01-15T10:00:00",
		},
		{
			ID:          "2",
			Name:        "Samarqand tumani",
			Code:        "SMQ001",
			Description: "Ikkinchi filial joylashgan tuman",
			CreatedAt:   "2024-01-20T10:00:00",
		},
	}
}

func seedDepartments() []model.Department {
	return []model.Department{
		{
			ID:               "1",
			Name:             "IT bo'limi",
			DepartmentNumber: "IT-001",
			DistrictID:       "1",
			DistrictName:     "Toshkent tumani",
			Manager:          "Karimov Sardor",
			EmployeeCount:    3,
			Description:      "Dasturlash va texnik yordam",
			CreatedAt:        "2024-02-01T10:00:00",
		},
		{
			ID:               "2",
			Name:             "Moliya bo'limi",
			DepartmentNumber: "FIN-001",
			DistrictID:       "1",
			DistrictName:     "Toshkent tumani",
			Manager:          "Abdullayeva Nilufar",
			EmployeeCount:    2,
			Description:      "Moliyaviy operatsiyalar",
			CreatedAt:        "2024-02-05T10:00:00",
		},
		{
			ID:               "3",
			Name:             "Marketing bo'limi",
			DepartmentNumber: "MKT-001",
			DistrictID:       "2",
			DistrictName:     "Samarqand tumani",
			Manager:          "Nazarova Dilshoda",
			EmployeeCount:    2,
			Description:      "Reklama va savdo",
			CreatedAt:        "2024-02-10T10:00:00",
		},
	}
}

func seedEmployees() []model.Employee {
	return []model.Employee{
		{
			ID: "1", Name: "Karimov Sardor", Phone: "+998901234567",
			Position: "IT menejer", DepartmentID: "1", DepartmentName: "IT bo'limi",
			DepartmentNumber: "IT-001", DistrictName: "Toshkent tumani",
			Email: "sardor@company.uz", Status: model.EmployeeStatusActive,
			CreatedAt: "2024-02-15T10:00:00",
		},
		{
			ID: "2", Name: "Abdullayeva Nilufar", Phone: "+998901234568",
			Position: "Moliya menejer", DepartmentID: "2", DepartmentName: "Moliya bo'limi",
			DepartmentNumber: "FIN-001", DistrictName: "Toshkent tumani",
			Email: "nilufar@company.uz", Status: model.EmployeeStatusActive,
			CreatedAt: "2024-02-16T10:00:00",
		},
		{
			ID: "3", Name: "Nazarova Dilshoda", Phone: "+998901234570",
			Position: "Marketing mutaxassis", DepartmentID: "3", DepartmentName: "Marketing bo'limi",
			DepartmentNumber: "MKT-001", DistrictName: "Samarqand tumani",
			Email: "dilshoda@company.uz", Status: model.EmployeeStatusActive,
			CreatedAt: "2024-02-17T10:00:00",
		},
		{
			ID: "4", Name: "Toshmatov Oybek", Phone: "+998901234569",
			Position: "IT dasturchi", DepartmentID: "1", DepartmentName: "IT bo'limi",
			DepartmentNumber: "IT-001", DistrictName: "Toshkent tumani",
			Email: "oybek@company.uz", Status: model.EmployeeStatusActive,
			CreatedAt: "2024-02-18T10:00:00",
		},
		{
			ID: "5", Name: "Aliyev Vali", Phone: "+998901234571",
			Position: "Moliya hisobchisi", DepartmentID: "2", DepartmentName: "Moliya bo'limi",
			DepartmentNumber: "FIN-001", DistrictName: "Toshkent tumani",
			Email: "vali@company.uz", Status: model.EmployeeStatusActive,
			CreatedAt: "2024-02-19T10:00:00",
		},
		{
			ID: "6", Name: "Rahimova Madina", Phone: "+998901234572",
			Position: "Marketing dizayner", DepartmentID: "3", DepartmentName: "Marketing bo'limi",
			DepartmentNumber: "MKT-001", DistrictName: "Samarqand tumani",
			Email: "madina@company.uz", Status: model.EmployeeStatusActive,
			CreatedAt: "2024-02-20T10:00:00",
		},
		{
			ID: "7", Name: "Ergashev Jasur", Phone: "+998901234573",
			Position: "IT tizim administratori", DepartmentID: "1", DepartmentName: "IT bo'limi",
			DepartmentNumber: "IT-001", DistrictName: "Toshkent tumani",
			Email: "jasur@company.uz", Status: model.EmployeeStatusActive,
			CreatedAt: "2024-02-21T10:00:00",
		},
	}
}

func seedAttendance(now time.Time) []model.AttendanceRecord {
	today := now.Format(time.DateOnly)
	yesterday := now.AddDate(0, 0, -1).Format(time.DateOnly)

	toshkent := &model.Location{Latitude: 41.2995, Longitude: 69.2401, Address: "Toshkent"}
	samarqand := &model.Location{Latitude: 39.6270, Longitude: 66.9750, Address: "Samarqand"}

	return []model.AttendanceRecord{
		{
			ID: "1", EmployeeName: "Karimov Sardor", EmployeeID: "1",
			Department: "IT bo'limi", Date: today,
			CheckIn: ptr("09:00"), CheckOut: ptr("18:00"),
			Status: model.AttendanceStatusPresent, WorkHours: "8:00", Location: toshkent,
		},
		{
			ID: "2", EmployeeName: "Abdullayeva Nilufar", EmployeeID: "2",
			Department: "Moliya bo'limi", Date: today,
			CheckIn: ptr("09:15"), CheckOut: ptr("18:00"),
			Status: model.AttendanceStatusLate, WorkHours: "7:45", Location: toshkent,
		},
		{
			ID: "3", EmployeeName: "Nazarova Dilshoda", EmployeeID: "3",
			Department: "Marketing bo'limi", Date: today,
			CheckIn: ptr("08:55"), CheckOut: ptr("17:30"),
			Status: model.AttendanceStatusEarlyLeave, WorkHours: "7:35", Location: samarqand,
		},
		{
			ID: "4", EmployeeName: "Toshmatov Oybek", EmployeeID: "4",
			Department: "IT bo'limi", Date: today,
			Status: model.AttendanceStatusAbsent, WorkHours: "0:00",
		},
		{
			ID: "5", EmployeeName: "Aliyev Vali", EmployeeID: "5",
			Department: "Moliya bo'limi", Date: today,
			CheckIn: ptr("09:00"), CheckOut: ptr("18:00"),
			Status: model.AttendanceStatusPresent, WorkHours: "8:00", Location: toshkent,
		},
		{
			ID: "6", EmployeeName: "Karimov Sardor", EmployeeID: "1",
			Department: "IT bo'limi", Date: yesterday,
			CheckIn: ptr("08:55"), CheckOut: ptr("18:10"),
			Status: model.AttendanceStatusPresent, WorkHours: "8:15", Location: toshkent,
		},
		{
			ID: "7", EmployeeName: "Abdullayeva Nilufar", EmployeeID: "2",
			Department: "Moliya bo'limi", Date: yesterday,
			CheckIn: ptr("09:00"), CheckOut: ptr("18:00"),
			Status: model.AttendanceStatusPresent, WorkHours: "8:00", Location: toshkent,
		},
	}
}

func ptr(s string) *string { return &s }
