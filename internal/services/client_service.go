package services

import (
	"time"

	"barbershop/internal/domain/models"
	"barbershop/internal/repositories"
	"barbershop/internal/utils"
)

// Retention thresholds in days since last completed visit.
const (
	retentionFrequentDays = 35
	retentionAtRiskDays   = 90
)

type ClientService struct {
	AppointmentRepo repositories.AppointmentRepository
	Timezone        string
}

// List returns clients derived from booking history, each tagged with a
// retention category.
func (s ClientService) List() ([]models.Client, error) {
	clients, err := s.AppointmentRepo.ListClients()
	if err != nil {
		return nil, err
	}
	today := utils.RegionalToday(s.Timezone)
	for i := range clients {
		clients[i].Retention = Categorize(clients[i], today)
	}
	return clients, nil
}

// Categorize buckets a client by days since the last completed visit:
// nuevo (never completed a visit), frecuente (≤35), en_riesgo (36–90),
// inactivo (>90).
func Categorize(c models.Client, today string) string {
	if c.VisitCount == 0 || c.LastVisitDate == "" {
		return models.RetentionNew
	}
	last, err := utils.ParseDate(c.LastVisitDate, "")
	if err != nil {
		return models.RetentionNew
	}
	ref, err := utils.ParseDate(today, "")
	if err != nil {
		return models.RetentionNew
	}
	days := calendarDays(last, ref)
	switch {
	case days <= retentionFrequentDays:
		return models.RetentionFrequent
	case days <= retentionAtRiskDays:
		return models.RetentionAtRisk
	default:
		return models.RetentionInactive
	}
}

// calendarDays counts whole calendar days from a to b. Both are restated at
// UTC midnight first so the 23-hour day a spring-forward produces in
// Santiago cannot shave a day off the count.
func calendarDays(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au).Hours() / 24)
}
