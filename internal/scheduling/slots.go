package scheduling

import (
	"context"
	"fmt"
)

// Slot is a candidate start time for a barber on a date.
type Slot struct {
	Time      string `json:"time"` // HH:MM
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// SlotProvider is the authority on slot availability. Implementations own
// conflict detection (existing bookings, working hours, days off); this
// package never re-derives conflicts on its own.
type SlotProvider interface {
	Slots(ctx context.Context, barberID int64, date string, durationMinutes int) ([]Slot, error)
}

const (
	defaultGridStart = 9 * 60  // 09:00
	defaultGridEnd   = 18 * 60 // 18:00 inclusive
	defaultGridStep  = 30
)

// DefaultGrid is the degraded-mode slot list used when the provider fails:
// 09:00 through 18:00 inclusive in 30-minute steps, all available. Showing
// something bookable beats blocking the flow; the insert-time conflict check
// still rejects collisions.
func DefaultGrid() []Slot {
	out := make([]Slot, 0, (defaultGridEnd-defaultGridStart)/defaultGridStep+1)
	for m := defaultGridStart; m <= defaultGridEnd; m += defaultGridStep {
		out = append(out, Slot{Time: minutesToClock(m), Available: true})
	}
	return out
}

func minutesToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// AnyAvailable reports whether at least one slot is free.
func AnyAvailable(slots []Slot) bool {
	for _, s := range slots {
		if s.Available {
			return true
		}
	}
	return false
}
