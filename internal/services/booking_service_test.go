package services

import (
	"context"
	"testing"

	"barbershop/internal/domain"
	"barbershop/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestBookingCreateValidation(t *testing.T) {
	svc := BookingService{Timezone: "America/Santiago"}
	base := BookingRequest{
		BarberID:    7,
		Date:        "2099-01-04",
		StartTime:   "11:00",
		ServiceIDs:  []int64{1},
		ClientName:  "Pedro",
		ClientPhone: "912345678",
	}

	cases := []struct {
		name   string
		mutate func(*BookingRequest)
	}{
		{"missing name", func(r *BookingRequest) { r.ClientName = "  " }},
		{"bad phone", func(r *BookingRequest) { r.ClientPhone = "123" }},
		{"empty selection", func(r *BookingRequest) { r.ServiceIDs = nil }},
		{"bad start time", func(r *BookingRequest) { r.StartTime = "30:00" }},
		{"bad date", func(r *BookingRequest) { r.Date = "04/01/2099" }},
		{"past date", func(r *BookingRequest) { r.Date = "2020-01-04" }},
	}
	for _, tc := range cases {
		req := base
		tc.mutate(&req)
		_, err := svc.Create(context.Background(), req)
		if !domain.IsValidation(err) {
			t.Fatalf("%s: expected ValidationError, got %v", tc.name, err)
		}
	}
}

func TestBookingConfirmOnlyPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT status FROM appointments").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("confirmada"))

	svc := BookingService{AppointmentRepo: repositories.AppointmentRepository{DB: db}}
	if err := svc.Confirm(5); !domain.IsValidation(err) {
		t.Fatalf("confirming a confirmed appointment should fail validation, got %v", err)
	}
}

func TestBookingCancelNeedsReason(t *testing.T) {
	svc := BookingService{}
	if err := svc.Cancel(5, "  "); !domain.IsValidation(err) {
		t.Fatalf("cancel without reason should fail validation, got %v", err)
	}
}

func TestBookingCancelTransition(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT status FROM appointments").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("pendiente"))
	mock.ExpectExec("UPDATE appointments").
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := BookingService{AppointmentRepo: repositories.AppointmentRepository{DB: db}}
	if err := svc.Cancel(5, "cliente no puede asistir"); err != nil {
		t.Fatalf("Cancel error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingCompleteRejectsCancelled(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT status FROM appointments").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("cancelada"))

	svc := BookingService{AppointmentRepo: repositories.AppointmentRepository{DB: db}}
	if err := svc.Complete(5); !domain.IsValidation(err) {
		t.Fatalf("completing a cancelled appointment should fail validation, got %v", err)
	}
}
