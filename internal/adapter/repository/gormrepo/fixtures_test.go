package gormrepo

import (
	"testing"
	"time"

	employeeDomain "wfh-leave-backend/internal/domain/employee"
	wfhDomain "wfh-leave-backend/internal/domain/wfh"

	"gorm.io/gorm"
)

func date(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func ptr[T any](v T) *T { return &v }

func seedStaff(t *testing.T, db *gorm.DB) {
	t.Helper()
	rows := []employeeDomain.Employee{
		{StaffID: 140001, StaffFName: "Derek", StaffLName: "Tan", Dept: "Sales", Position: "Director",
			Country: "Singapore", Email: "Derek.Tan@allinone.com.sg", ReportingManager: ptr(int64(130002)), Role: 1},
		{StaffID: 140008, StaffFName: "Jaclyn", StaffLName: "Lee", Dept: "Sales", Position: "Sales Manager",
			Country: "Singapore", Email: "Jaclyn.Lee@allinone.com.sg", ReportingManager: ptr(int64(140001)), Role: 3},
	}
	if err := db.Omit("Manager").Create(&rows).Error; err != nil {
		t.Fatalf("seed employees: %v", err)
	}
}

func makeRequest(id string, apply time.Time, status wfhDomain.Status) *wfhDomain.WFHRequest {
	return &wfhDomain.WFHRequest{
		RequestID:     id,
		StaffID:       140008,
		ManagerID:     140001,
		SpecificDate:  date(2024, 9, 15),
		IsAM:          true,
		IsPM:          true,
		RequestStatus: status,
		ApplyDate:     apply,
		RequestReason: "Personal matters",
	}
}
