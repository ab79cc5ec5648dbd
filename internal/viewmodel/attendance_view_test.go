package viewmodel

import (
	"testing"

	"barbearia_matheus/internal/domain/entities"
)

func att(id int, client string, services int, status entities.AttendanceStatus, payment entities.PaymentStatus) entities.Attendance {
	svcs := make([]entities.AttendanceService, services)
	for i := range svcs {
		svcs[i] = entities.AttendanceService{ID: "svc", Name: "Corte", Price: 30}
	}
	return entities.Attendance{
		ID:            id,
		Client:        entities.AttendanceClient{ID: "c", Name: client},
		Services:      svcs,
		Status:        status,
		PaymentStatus: payment,
	}
}

func TestSortParamValidity(t *testing.T) {
	for _, f := range []SortField{SortByID, SortByClient, SortByServices, SortByStatus, SortByPayment} {
		if !f.IsValid() {
			t.Fatalf("field %s should be valid", f)
		}
	}
	if SortField("price").IsValid() {
		t.Fatalf("unknown field must be invalid")
	}

	for _, d := range []SortDirection{SortAsc, SortDesc} {
		if !d.IsValid() {
			t.Fatalf("direction %s should be valid", d)
		}
	}
	if SortDirection("up").IsValid() || SortDirection("").IsValid() {
		t.Fatalf("unknown direction must be invalid")
	}
}

func TestFilterByStatus(t *testing.T) {
	records := []entities.Attendance{
		att(1, "Ana", 1, entities.AttendanceStatusWaiting, entities.PaymentStatusPending),
		att(2, "Bia", 1, entities.AttendanceStatusProgress, entities.PaymentStatusPending),
		att(3, "Caio", 1, entities.AttendanceStatusFinished, entities.PaymentStatusPaid),
	}

	t.Run("all is identity", func(t *testing.T) {
		got := FilterByStatus(records, FilterAll)
		if len(got) != 3 {
			t.Fatalf("expected 3 records, got %d", len(got))
		}
	})

	t.Run("by status", func(t *testing.T) {
		got := FilterByStatus(records, "progress")
		if len(got) != 1 || got[0].ID != 2 {
			t.Fatalf("unexpected result: %+v", got)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := FilterByStatus(nil, "waiting"); len(got) != 0 {
			t.Fatalf("expected empty, got %+v", got)
		}
	})
}

func TestSortAttendances(t *testing.T) {
	t.Run("by id desc default", func(t *testing.T) {
		records := []entities.Attendance{
			att(2, "Bia", 1, entities.AttendanceStatusWaiting, entities.PaymentStatusPending),
			att(5, "Ana", 1, entities.AttendanceStatusWaiting, entities.PaymentStatusPending),
			att(1, "Caio", 1, entities.AttendanceStatusWaiting, entities.PaymentStatusPending),
		}
		got := SortAttendances(records, SortByID, SortDesc)
		if got[0].ID != 5 || got[1].ID != 2 || got[2].ID != 1 {
			t.Fatalf("unexpected order: %d %d %d", got[0].ID, got[1].ID, got[2].ID)
		}
		if records[0].ID != 2 {
			t.Fatalf("input slice was mutated")
		}
	})

	t.Run("by client name case-insensitive", func(t *testing.T) {
		records := []entities.Attendance{
			att(1, "carla", 1, entities.AttendanceStatusWaiting, entities.PaymentStatusPending),
			att(2, "Ana", 1, entities.AttendanceStatusWaiting, entities.PaymentStatusPending),
			att(3, "BIA", 1, entities.AttendanceStatusWaiting, entities.PaymentStatusPending),
		}
		got := SortAttendances(records, SortByClient, SortAsc)
		if got[0].Client.Name != "Ana" || got[1].Client.Name != "BIA" || got[2].Client.Name != "carla" {
			t.Fatalf("unexpected order: %s %s %s", got[0].Client.Name, got[1].Client.Name, got[2].Client.Name)
		}
	})

	t.Run("by service count", func(t *testing.T) {
		records := []entities.Attendance{
			att(1, "Ana", 3, entities.AttendanceStatusWaiting, entities.PaymentStatusPending),
			att(2, "Bia", 1, entities.AttendanceStatusWaiting, entities.PaymentStatusPending),
		}
		got := SortAttendances(records, SortByServices, SortAsc)
		if got[0].ID != 2 {
			t.Fatalf("expected record with fewer services first, got %d", got[0].ID)
		}
	})

	t.Run("stable on equal keys", func(t *testing.T) {
		records := []entities.Attendance{
			att(10, "Ana", 1, entities.AttendanceStatusWaiting, entities.PaymentStatusPending),
			att(11, "ana", 1, entities.AttendanceStatusWaiting, entities.PaymentStatusPending),
			att(12, "ANA", 1, entities.AttendanceStatusWaiting, entities.PaymentStatusPending),
		}
		for _, dir := range []SortDirection{SortAsc, SortDesc} {
			got := SortAttendances(records, SortByClient, dir)
			if got[0].ID != 10 || got[1].ID != 11 || got[2].ID != 12 {
				t.Fatalf("direction %s broke tie order: %d %d %d", dir, got[0].ID, got[1].ID, got[2].ID)
			}
		}
	})
}

func TestComputeStats(t *testing.T) {
	records := []entities.Attendance{
		att(1, "Ana", 1, entities.AttendanceStatusWaiting, entities.PaymentStatusPending),
		att(2, "Bia", 1, entities.AttendanceStatusWaiting, entities.PaymentStatusPending),
		att(3, "Caio", 1, entities.AttendanceStatusProgress, entities.PaymentStatusPending),
		att(4, "Davi", 1, entities.AttendanceStatusFinished, entities.PaymentStatusPaid),
	}
	got := ComputeStats(records)
	want := Stats{Total: 4, Waiting: 2, Progress: 1, Finished: 1}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	if ComputeStats(nil) != (Stats{}) {
		t.Fatalf("expected zero stats for empty input")
	}
}

func TestToggleSort(t *testing.T) {
	cases := []struct {
		name      string
		curField  SortField
		curDir    SortDirection
		req       SortField
		wantField SortField
		wantDir   SortDirection
	}{
		{name: "same field flips desc to asc", curField: SortByID, curDir: SortDesc, req: SortByID, wantField: SortByID, wantDir: SortAsc},
		{name: "same field flips asc to desc", curField: SortByID, curDir: SortAsc, req: SortByID, wantField: SortByID, wantDir: SortDesc},
		{name: "new field resets to asc", curField: SortByID, curDir: SortAsc, req: SortByClient, wantField: SortByClient, wantDir: SortAsc},
		{name: "new field resets even from desc", curField: SortByStatus, curDir: SortDesc, req: SortByPayment, wantField: SortByPayment, wantDir: SortAsc},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			field, dir := ToggleSort(tc.curField, tc.curDir, tc.req)
			if field != tc.wantField || dir != tc.wantDir {
				t.Fatalf("got (%s, %s), want (%s, %s)", field, dir, tc.wantField, tc.wantDir)
			}
		})
	}
}

func TestNextStatus(t *testing.T) {
	if NextStatus(entities.AttendanceStatusWaiting) != entities.AttendanceStatusProgress {
		t.Fatalf("waiting should advance to progress")
	}
	if NextStatus(entities.AttendanceStatusProgress) != entities.AttendanceStatusFinished {
		t.Fatalf("progress should advance to finished")
	}
	if NextStatus(entities.AttendanceStatusFinished) != entities.AttendanceStatusFinished {
		t.Fatalf("finished must stay finished")
	}
}

func TestFilterSortStatsScenario(t *testing.T) {
	records := []entities.Attendance{
		att(1, "zeca", 1, entities.AttendanceStatusProgress, entities.PaymentStatusPending),
		att(2, "Ana", 2, entities.AttendanceStatusWaiting, entities.PaymentStatusPending),
		att(3, "Bia", 1, entities.AttendanceStatusProgress, entities.PaymentStatusPending),
		att(4, "Caio", 1, entities.AttendanceStatusFinished, entities.PaymentStatusPaid),
		att(5, "davi", 3, entities.AttendanceStatusWaiting, entities.PaymentStatusPending),
	}

	filtered := SortAttendances(FilterByStatus(records, "progress"), SortByClient, SortAsc)
	if len(filtered) != 2 {
		t.Fatalf("expected 2 progress records, got %d", len(filtered))
	}
	if filtered[0].Client.Name != "Bia" || filtered[1].Client.Name != "zeca" {
		t.Fatalf("unexpected order: %s, %s", filtered[0].Client.Name, filtered[1].Client.Name)
	}

	stats := ComputeStats(records)
	if stats.Total != 5 || stats.Waiting != 2 || stats.Progress != 2 || stats.Finished != 1 {
		t.Fatalf("stats must cover the unfiltered set, got %+v", stats)
	}
}
