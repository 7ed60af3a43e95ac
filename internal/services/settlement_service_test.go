package services

import (
	"testing"

	"barbershop/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSettlementBuild(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM barbers").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "email", "commission_rate", "active"}).
			AddRow(3, "Mario", "", "", 0.4, true))
	mock.ExpectQuery("FROM appointments").WithArgs(int64(3), "2026-08-01", "2026-08-31").
		WillReturnRows(sqlmock.NewRows([]string{"id", "date", "start_time", "client_name", "total_price"}).
			AddRow(11, "2026-08-05", "10:00", "Pedro", 10000).
			AddRow(12, "2026-08-20", "16:30", "Juan", 15000))

	svc := SettlementService{
		BarberRepo:      repositories.BarberRepository{DB: db},
		AppointmentRepo: repositories.AppointmentRepository{DB: db},
	}

	stl, err := svc.Build(3, "2026-08-01", "2026-08-31")
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if stl.Gross != 25000 {
		t.Fatalf("gross = %d, want 25000", stl.Gross)
	}
	if stl.Commission != 10000 {
		t.Fatalf("commission = %d, want 10000", stl.Commission)
	}
	if stl.Payout != 15000 {
		t.Fatalf("payout = %d, want 15000", stl.Payout)
	}
	if len(stl.Lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(stl.Lines))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSettlementBuildValidatesRange(t *testing.T) {
	svc := SettlementService{}
	if _, err := svc.Build(3, "", "2026-08-31"); err == nil {
		t.Fatalf("missing from should fail")
	}
	if _, err := svc.Build(3, "2026-08-31", "2026-08-01"); err == nil {
		t.Fatalf("inverted range should fail")
	}
}
