package autoreject

import (
	"context"
	"errors"
	"testing"
	"time"

	employeeDomain "wfh-leave-backend/internal/domain/employee"
	"wfh-leave-backend/internal/domain/wfh"
	"wfh-leave-backend/internal/adapter/repository/gormrepo"
	"wfh-leave-backend/internal/testutil/sqlitedb"

	"gorm.io/gorm"
)

func seedRequests(t *testing.T, db *gorm.DB, reqs ...wfh.WFHRequest) {
	t.Helper()
	mgr := int64(140001)
	staff := []employeeDomain.Employee{
		{StaffID: 140001, StaffFName: "Derek", StaffLName: "Tan", Dept: "Sales", Position: "Director", Country: "Singapore", Email: "Derek.Tan@allinone.com.sg", Role: 1},
		{StaffID: 140008, StaffFName: "Jaclyn", StaffLName: "Lee", Dept: "Sales", Position: "Sales Manager", Country: "Singapore", Email: "Jaclyn.Lee@allinone.com.sg", ReportingManager: &mgr, Role: 3},
	}
	if err := db.Omit("Manager").Create(&staff).Error; err != nil {
		t.Fatalf("seed staff: %v", err)
	}
	for i := range reqs {
		if err := db.Omit("Staff", "Manager").Create(&reqs[i]).Error; err != nil {
			t.Fatalf("seed request %s: %v", reqs[i].RequestID, err)
		}
	}
}

func pendingRequest(id string, apply time.Time) wfh.WFHRequest {
	return wfh.WFHRequest{
		RequestID:     id,
		StaffID:       140008,
		ManagerID:     140001,
		SpecificDate:  day(2024, 12, 20),
		IsAM:          true,
		IsPM:          false,
		RequestStatus: wfh.StatusPending,
		ApplyDate:     apply,
		RequestReason: "Personal matters",
	}
}

func loadAll(t *testing.T, db *gorm.DB) map[string]wfh.WFHRequest {
	t.Helper()
	var rows []wfh.WFHRequest
	if err := db.Order("request_id").Find(&rows).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	out := make(map[string]wfh.WFHRequest, len(rows))
	for _, r := range rows {
		out[r.RequestID] = r
	}
	return out
}

func sameExceptStatusAndReason(a, b wfh.WFHRequest) bool {
	return a.RequestID == b.RequestID && a.StaffID == b.StaffID && a.ManagerID == b.ManagerID &&
		a.SpecificDate.Equal(b.SpecificDate) && a.ApplyDate.Equal(b.ApplyDate) &&
		a.IsAM == b.IsAM && a.IsPM == b.IsPM
}

func TestRun_Store_ReferenceScenarios(t *testing.T) {
	db := sqlitedb.Open(t)
	seedRequests(t, db,
		pendingRequest("WFH-0912", day(2024, 9, 12)),
		pendingRequest("WFH-1012", day(2024, 10, 12)),
		pendingRequest("WFH-1112", day(2024, 11, 12)),
	)
	before := loadAll(t, db)

	uc := NewUsecase(gormrepo.NewGormUoW(db), WithClock(fixedClock(time.Date(2024, 12, 12, 8, 0, 0, 0, time.UTC))))
	res, err := uc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Scanned != 3 || res.Cancelled != 1 || res.CancelledIDs[0] != "WFH-0912" {
		t.Fatalf("unexpected result: %+v", res)
	}

	after := loadAll(t, db)
	want := map[string]struct {
		status wfh.Status
		reason string
	}{
		"WFH-0912": {wfh.StatusCancelled, "Auto-rejected by system"},
		"WFH-1012": {wfh.StatusPending, "Personal matters"},
		"WFH-1112": {wfh.StatusPending, "Personal matters"},
	}
	for id, w := range want {
		got := after[id]
		if got.RequestStatus != w.status || got.RequestReason != w.reason {
			t.Fatalf("%s: got %s/%q, want %s/%q", id, got.RequestStatus, got.RequestReason, w.status, w.reason)
		}
		if !sameExceptStatusAndReason(before[id], got) {
			t.Fatalf("%s: fields other than status and reason changed\nbefore %+v\nafter  %+v", id, before[id], got)
		}
	}
}

func TestRun_Store_Idempotent(t *testing.T) {
	db := sqlitedb.Open(t)
	seedRequests(t, db,
		pendingRequest("A", day(2024, 1, 5)),
		pendingRequest("B", day(2024, 12, 1)),
	)
	uc := NewUsecase(gormrepo.NewGormUoW(db), WithClock(fixedClock(time.Date(2024, 12, 12, 0, 0, 0, 0, time.UTC))))

	first, err := uc.Run(context.Background())
	if err != nil || first.Cancelled != 1 {
		t.Fatalf("first run: %+v, %v", first, err)
	}
	snapshot := loadAll(t, db)

	second, err := uc.Run(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second.Cancelled != 0 || second.Scanned != 1 {
		t.Fatalf("second run should be a no-op, got %+v", second)
	}
	for id, r := range loadAll(t, db) {
		if r.RequestStatus != snapshot[id].RequestStatus || r.RequestReason != snapshot[id].RequestReason {
			t.Fatalf("%s changed on re-run", id)
		}
	}
}

func TestRun_Store_LeavesDecidedRequestsAlone(t *testing.T) {
	approved := pendingRequest("OLD-APPROVED", day(2023, 1, 1))
	approved.RequestStatus = wfh.StatusApproved
	approved.RequestReason = "Approved long ago"

	db := sqlitedb.Open(t)
	seedRequests(t, db, approved)

	res, err := NewUsecase(gormrepo.NewGormUoW(db), WithClock(fixedClock(time.Date(2024, 12, 12, 0, 0, 0, 0, time.UTC)))).Run(context.Background())
	if err != nil || res.Scanned != 0 || res.Cancelled != 0 {
		t.Fatalf("Run: %+v, %v", res, err)
	}
	if got := loadAll(t, db)["OLD-APPROVED"]; got.RequestStatus != wfh.StatusApproved || got.RequestReason != "Approved long ago" {
		t.Fatalf("approved request touched: %+v", got)
	}
}

func TestRun_Store_ScanFailureAltersNothing(t *testing.T) {
	db := sqlitedb.Open(t)
	seedRequests(t, db, pendingRequest("WFH-0912", day(2024, 9, 12)))
	before := loadAll(t, db)

	connErr := errors.New("Database connection error")
	if err := db.Callback().Query().Before("gorm:query").Register("test:fail_query", func(tx *gorm.DB) {
		_ = tx.AddError(connErr)
	}); err != nil {
		t.Fatalf("register callback: %v", err)
	}

	res, err := NewUsecase(gormrepo.NewGormUoW(db), WithClock(fixedClock(time.Date(2024, 12, 12, 0, 0, 0, 0, time.UTC)))).Run(context.Background())
	if !errors.Is(err, connErr) || res != nil {
		t.Fatalf("want connection error, got %+v, %v", res, err)
	}
	if err.Error() != "Database connection error" {
		t.Fatalf("message altered: %q", err.Error())
	}

	_ = db.Callback().Query().Remove("test:fail_query")
	after := loadAll(t, db)
	if after["WFH-0912"].RequestStatus != before["WFH-0912"].RequestStatus ||
		after["WFH-0912"].RequestReason != before["WFH-0912"].RequestReason {
		t.Fatalf("request altered after failed scan: %+v", after["WFH-0912"])
	}
}

func TestRun_Store_UpdateFailureRollsBackEarlierUpdates(t *testing.T) {
	db := sqlitedb.Open(t)
	seedRequests(t, db,
		pendingRequest("A", day(2024, 1, 5)),
		pendingRequest("B", day(2024, 2, 5)),
	)

	var updates int
	diskErr := errors.New("disk I/O error")
	if err := db.Callback().Update().Before("gorm:update").Register("test:fail_second_update", func(tx *gorm.DB) {
		updates++
		if updates == 2 {
			_ = tx.AddError(diskErr)
		}
	}); err != nil {
		t.Fatalf("register callback: %v", err)
	}

	_, err := NewUsecase(gormrepo.NewGormUoW(db), WithClock(fixedClock(time.Date(2024, 12, 12, 0, 0, 0, 0, time.UTC)))).Run(context.Background())
	if !errors.Is(err, diskErr) {
		t.Fatalf("want disk error, got %v", err)
	}
	if updates != 2 {
		t.Fatalf("expected the first update to have run, updates=%d", updates)
	}
	for id, r := range loadAll(t, db) {
		if r.RequestStatus != wfh.StatusPending || r.RequestReason != "Personal matters" {
			t.Fatalf("%s not rolled back: %+v", id, r)
		}
	}
}
