package scheduling

import (
	"context"
	"errors"
	"testing"
)

// fakeProvider returns canned slots per requested duration and counts calls.
type fakeProvider struct {
	byDuration map[int][]Slot
	calls      int
	durations  []int
	err        error
}

func (f *fakeProvider) Slots(_ context.Context, _ int64, _ string, duration int) ([]Slot, error) {
	f.calls++
	f.durations = append(f.durations, duration)
	if f.err != nil {
		return nil, f.err
	}
	return f.byDuration[duration], nil
}

func busy(times ...string) []Slot {
	out := make([]Slot, 0, len(times))
	for _, tm := range times {
		out = append(out, Slot{Time: tm, Available: false, Reason: "ocupado"})
	}
	return out
}

func free(times ...string) []Slot {
	out := make([]Slot, 0, len(times))
	for _, tm := range times {
		out = append(out, Slot{Time: tm, Available: true})
	}
	return out
}

func TestSearchNoFallbackWhenAvailable(t *testing.T) {
	quote := BuildQuote([]int64{1, 2}, testCatalog())
	p := &fakeProvider{byDuration: map[int][]Slot{quote.Duration: free("10:00", "10:30")}}

	res := Search(context.Background(), p, "req-1", 7, "2026-09-10", quote)

	if !AnyAvailable(res.Slots) {
		t.Fatalf("expected available slots")
	}
	if res.Fallback != nil {
		t.Fatalf("fallback must not trigger when the full duration fits")
	}
	if p.calls != 1 {
		t.Fatalf("expected a single provider call, got %d", p.calls)
	}
}

func TestSearchFallbackExactlyOnce(t *testing.T) {
	// 2x Corte + Barba = 90; Barba alone quotes 20+10 = 30.
	quote := BuildQuote([]int64{1, 1, 2}, testCatalog())
	p := &fakeProvider{byDuration: map[int][]Slot{
		90: busy("10:00", "10:30"),
		30: free("17:30"),
	}}

	res := Search(context.Background(), p, "req-1", 7, "2026-09-10", quote)

	if p.calls != 2 {
		t.Fatalf("expected exactly one secondary query (2 calls total), got %d", p.calls)
	}
	if res.Fallback == nil {
		t.Fatalf("expected fallback suggestion")
	}
	if res.Fallback.Service.ID != 2 {
		t.Fatalf("fallback should pick the shortest service (Barba id=2), got %d", res.Fallback.Service.ID)
	}
	if p.durations[1] != 30 {
		t.Fatalf("secondary query duration = %d, want 30", p.durations[1])
	}
	if !AnyAvailable(res.Fallback.Slots) {
		t.Fatalf("fallback slots should contain availability")
	}
}

func TestSearchFallbackSuppressedForSingleService(t *testing.T) {
	quote := BuildQuote([]int64{1, 1}, testCatalog()) // one distinct service, qty 2
	p := &fakeProvider{byDuration: map[int][]Slot{quote.Duration: busy("10:00")}}

	res := Search(context.Background(), p, "req-1", 7, "2026-09-10", quote)

	if p.calls != 1 {
		t.Fatalf("single distinct service must never issue a fallback query, got %d calls", p.calls)
	}
	if res.Fallback != nil {
		t.Fatalf("unexpected fallback suggestion")
	}
}

func TestSearchFallbackWithoutAvailabilityStaysSilent(t *testing.T) {
	quote := BuildQuote([]int64{1, 2}, testCatalog())
	p := &fakeProvider{byDuration: map[int][]Slot{
		quote.Duration: busy("10:00"),
		30:             busy("17:30"),
	}}

	res := Search(context.Background(), p, "req-1", 7, "2026-09-10", quote)

	if p.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", p.calls)
	}
	if res.Fallback != nil {
		t.Fatalf("no suggestion should surface when the reduced query is also full")
	}
}

func TestSearchDegradedMode(t *testing.T) {
	quote := BuildQuote([]int64{1}, testCatalog())
	p := &fakeProvider{err: errors.New("db down")}

	res := Search(context.Background(), p, "req-1", 7, "2026-09-10", quote)

	if !res.Degraded {
		t.Fatalf("expected degraded result")
	}
	want := DefaultGrid()
	if len(res.Slots) != len(want) {
		t.Fatalf("grid length = %d, want %d", len(res.Slots), len(want))
	}
	for i, s := range res.Slots {
		if s.Time != want[i].Time || !s.Available {
			t.Fatalf("slot %d = %+v, want %+v", i, s, want[i])
		}
	}
}

func TestDefaultGridShape(t *testing.T) {
	grid := DefaultGrid()
	if len(grid) != 19 {
		t.Fatalf("grid length = %d, want 19 (09:00..18:00 every 30m inclusive)", len(grid))
	}
	if grid[0].Time != "09:00" || grid[len(grid)-1].Time != "18:00" {
		t.Fatalf("grid bounds = %s..%s", grid[0].Time, grid[len(grid)-1].Time)
	}
}

func TestSearcherDiscardsStaleGenerations(t *testing.T) {
	quote := BuildQuote([]int64{1}, testCatalog())
	p := &fakeProvider{byDuration: map[int][]Slot{quote.Duration: free("10:00")}}
	s := &Searcher{Provider: p}

	first, published := s.Search(context.Background(), "req-1", 7, "2026-09-10", quote)
	if !published {
		t.Fatalf("first search should publish")
	}
	second, published := s.Search(context.Background(), "req-2", 7, "2026-09-11", quote)
	if !published {
		t.Fatalf("second search should publish")
	}
	if second.Generation <= first.Generation {
		t.Fatalf("generations must be monotonic: %d then %d", first.Generation, second.Generation)
	}

	latest, ok := s.Latest()
	if !ok || latest.Date != "2026-09-11" {
		t.Fatalf("latest should be the newest search, got %+v", latest)
	}
}
