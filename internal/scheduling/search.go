package scheduling

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"barbershop/internal/domain/models"
	"barbershop/internal/utils"
)

// SearchResult is one resolved availability lookup.
type SearchResult struct {
	BarberID   int64               `json:"barber_id"`
	Date       string              `json:"date"`
	Duration   int                 `json:"duration_minutes"`
	Slots      []Slot              `json:"slots"`
	Degraded   bool                `json:"degraded"` // provider failed, static grid returned
	Fallback   *FallbackSuggestion `json:"fallback,omitempty"`
	Generation uint64              `json:"-"`
}

// FallbackSuggestion offers a reduced booking with a single service when the
// full selection does not fit anywhere on the requested day.
type FallbackSuggestion struct {
	Service models.Service `json:"service"`
	Slots   []Slot         `json:"slots"`
}

// Search runs the availability query for the full quote and, when nothing
// fits and more than one distinct service was selected, exactly one retry
// with the shortest service alone. No tertiary query, no subset search.
func Search(ctx context.Context, provider SlotProvider, requestID string, barberID int64, date string, quote Quote) SearchResult {
	res := SearchResult{BarberID: barberID, Date: date, Duration: quote.Duration}
	res.Slots, res.Degraded = querySlots(ctx, provider, requestID, barberID, date, quote.Duration)

	if AnyAvailable(res.Slots) {
		return res
	}

	distinct := quote.DistinctServices()
	if len(distinct) < 2 {
		return res
	}

	// Shortest service wins; ties resolve to catalog order because the
	// lines are already sorted that way and the scan keeps the first.
	candidate := distinct[0]
	for _, svc := range distinct[1:] {
		if svc.Duration < candidate.Duration {
			candidate = svc
		}
	}

	reduced := BuildQuote([]int64{candidate.ID}, distinct)
	slots, degraded := querySlots(ctx, provider, requestID, barberID, date, reduced.Duration)
	if degraded || !AnyAvailable(slots) {
		return res
	}
	res.Fallback = &FallbackSuggestion{Service: candidate, Slots: slots}
	return res
}

func querySlots(ctx context.Context, provider SlotProvider, requestID string, barberID int64, date string, duration int) ([]Slot, bool) {
	slots, err := provider.Slots(ctx, barberID, date, duration)
	if err != nil {
		utils.LogEvent(requestID, "scheduling", "provider_fallback",
			fmt.Sprintf("barber_id=%d date=%s err=%v", barberID, date, err))
		return DefaultGrid(), true
	}
	return slots, false
}

// Searcher serializes availability lookups behind a generation token so a
// slow early query can never overwrite the result of a later one.
type Searcher struct {
	Provider SlotProvider

	gen    atomic.Uint64
	mu     sync.Mutex
	latest SearchResult
	seen   bool
}

func (s *Searcher) Search(ctx context.Context, requestID string, barberID int64, date string, quote Quote) (SearchResult, bool) {
	gen := s.gen.Add(1)
	res := Search(ctx, s.Provider, requestID, barberID, date, quote)
	res.Generation = gen

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen.Load() {
		// A newer search started while this one was in flight; discard.
		return res, false
	}
	s.latest = res
	s.seen = true
	return res, true
}

// Latest returns the most recently published result.
func (s *Searcher) Latest() (SearchResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest, s.seen
}
