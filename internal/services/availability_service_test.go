package services

import (
	"context"
	"testing"

	"barbershop/internal/domain/models"
	"barbershop/internal/repositories"
	"barbershop/internal/scheduling"
	"barbershop/internal/utils"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestScheduleProviderMarksSlots(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	date := "2026-09-10"
	day, err := utils.ParseDate(date, "America/Santiago")
	if err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}
	weekday := int(day.Weekday())

	// Shift 10:00-13:00; one 60-minute booking at 11:00.
	mock.ExpectQuery("FROM working_hours").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "barber_id", "weekday", "start", "end", "active"}).
			AddRow(1, 7, weekday, "10:00", "13:00", true))
	mock.ExpectQuery("FROM appointments").WithArgs(int64(7), date).
		WillReturnRows(sqlmock.NewRows([]string{"id", "start_time", "duration_minutes"}).
			AddRow(42, "11:00", 60))

	p := ScheduleProvider{
		BarberRepo:      repositories.BarberRepository{DB: db},
		AppointmentRepo: repositories.AppointmentRepository{DB: db},
		Timezone:        "America/Santiago",
	}

	slots, err := p.Slots(context.Background(), 7, date, 30)
	if err != nil {
		t.Fatalf("Slots error: %v", err)
	}
	// Grid: 10:00 10:30 11:00 11:30 12:00 12:30
	if len(slots) != 6 {
		t.Fatalf("slots = %d, want 6", len(slots))
	}

	byTime := map[string]bool{}
	reasons := map[string]string{}
	for _, s := range slots {
		byTime[s.Time] = s.Available
		reasons[s.Time] = s.Reason
	}
	for _, tm := range []string{"10:00", "10:30", "12:00", "12:30"} {
		if !byTime[tm] {
			t.Fatalf("slot %s should be available (reason=%q)", tm, reasons[tm])
		}
	}
	for _, tm := range []string{"11:00", "11:30"} {
		if byTime[tm] {
			t.Fatalf("slot %s should collide with the 11:00 booking", tm)
		}
		if reasons[tm] != "ocupado" {
			t.Fatalf("slot %s reason = %q, want ocupado", tm, reasons[tm])
		}
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestScheduleProviderDurationOverrunsShift(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	date := "2026-09-10"
	day, _ := utils.ParseDate(date, "America/Santiago")
	weekday := int(day.Weekday())

	mock.ExpectQuery("FROM working_hours").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "barber_id", "weekday", "start", "end", "active"}).
			AddRow(1, 7, weekday, "10:00", "12:00", true))
	mock.ExpectQuery("FROM appointments").WithArgs(int64(7), date).
		WillReturnRows(sqlmock.NewRows([]string{"id", "start_time", "duration_minutes"}))

	p := ScheduleProvider{
		BarberRepo:      repositories.BarberRepository{DB: db},
		AppointmentRepo: repositories.AppointmentRepository{DB: db},
		Timezone:        "America/Santiago",
	}

	// 90 minutes only fits at 10:00 and 10:30.
	slots, err := p.Slots(context.Background(), 7, date, 90)
	if err != nil {
		t.Fatalf("Slots error: %v", err)
	}
	for _, s := range slots {
		fits := s.Time <= "10:30"
		if s.Available != fits {
			t.Fatalf("slot %s available=%v, want %v", s.Time, s.Available, fits)
		}
		if !fits && s.Reason != "fuera de horario" {
			t.Fatalf("slot %s reason = %q", s.Time, s.Reason)
		}
	}
}

func TestScheduleProviderDayOff(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM working_hours").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "barber_id", "weekday", "start", "end", "active"}))
	mock.ExpectQuery("FROM appointments").WithArgs(int64(7), "2026-09-10").
		WillReturnRows(sqlmock.NewRows([]string{"id", "start_time", "duration_minutes"}))

	p := ScheduleProvider{
		BarberRepo:      repositories.BarberRepository{DB: db},
		AppointmentRepo: repositories.AppointmentRepository{DB: db},
		Timezone:        "America/Santiago",
	}

	slots, err := p.Slots(context.Background(), 7, "2026-09-10", 30)
	if err != nil {
		t.Fatalf("Slots error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("day off should yield no slots, got %d", len(slots))
	}
}

// interleavingProvider answers slot queries but, on the first call, lets a
// second client finish a whole search on the same Searcher first.
type interleavingProvider struct {
	searcher    *scheduling.Searcher
	otherQuote  scheduling.Quote
	interleaved bool
}

func (p *interleavingProvider) Slots(ctx context.Context, _ int64, _ string, _ int) ([]scheduling.Slot, error) {
	if !p.interleaved {
		p.interleaved = true
		p.searcher.Search(ctx, "req-b", 2, "2026-09-11", p.otherQuote)
	}
	return []scheduling.Slot{{Time: "10:00", Available: true}}, nil
}

func TestAvailabilitySearchKeepsOwnResultWhenSuperseded(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	catalog := []models.Service{{ID: 1, Name: "Corte", Price: 10000, Duration: 30, Buffer: 5, Active: true}}
	mock.ExpectQuery("FROM services").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "duration_minutes", "buffer_minutes", "category", "active"}).
			AddRow(1, "Corte", 10000, 30, 5, "", true))

	searcher := &scheduling.Searcher{}
	provider := &interleavingProvider{
		searcher:   searcher,
		otherQuote: scheduling.BuildQuote([]int64{1}, catalog),
	}
	searcher.Provider = provider

	svc := AvailabilityService{
		ServiceRepo: repositories.ServiceRepository{DB: db},
		Searcher:    searcher,
		Timezone:    "America/Santiago",
	}

	res, err := svc.Search(context.Background(), "req-a", 1, "2026-09-10", []int64{1})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if res.BarberID != 1 || res.Date != "2026-09-10" {
		t.Fatalf("caller must get its own barber/date back, got barber %d on %s", res.BarberID, res.Date)
	}

	latest, ok := searcher.Latest()
	if !ok || latest.BarberID != 2 || latest.Date != "2026-09-11" {
		t.Fatalf("the newer search should own the published snapshot, got %+v", latest)
	}
}
