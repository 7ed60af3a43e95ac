package scheduling

import (
	"barbershop/internal/domain/models"
)

// Quote aggregates a multiset of selected services into the totals the
// booking flow needs. Duration includes one shared buffer charged once
// (the max over distinct services), since the buffer is cleanup time at
// the end of the whole visit, not per unit.
type Quote struct {
	Lines    []models.SelectionLine `json:"lines"`
	Duration int                    `json:"duration_minutes"` // search duration, buffer included
	Price    int64                  `json:"total_price"`
}

// ServiceDuration returns chair time only (buffer excluded), used for the
// end-time shown to the client.
func (q Quote) ServiceDuration() int {
	d := 0
	for _, l := range q.Lines {
		d += l.Service.Duration * l.Quantity
	}
	return d
}

// DistinctServices returns the distinct selected services in catalog order.
func (q Quote) DistinctServices() []models.Service {
	out := make([]models.Service, 0, len(q.Lines))
	for _, l := range q.Lines {
		out = append(out, l.Service)
	}
	return out
}

// BuildQuote normalizes selectedIDs (repeats mean quantity) against the
// catalog. Unknown ids are ignored. An empty selection yields a zero quote;
// callers gate on that separately.
func BuildQuote(selectedIDs []int64, catalog []models.Service) Quote {
	counts := make(map[int64]int, len(selectedIDs))
	for _, id := range selectedIDs {
		counts[id]++
	}

	q := Quote{Lines: []models.SelectionLine{}}
	maxBuffer := 0
	// Walk the catalog, not the selection, so lines come out in catalog
	// order and repeated ids collapse into one line.
	for _, svc := range catalog {
		qty := counts[svc.ID]
		if qty == 0 {
			continue
		}
		q.Lines = append(q.Lines, models.SelectionLine{Service: svc, Quantity: qty})
		q.Duration += svc.Duration * qty
		q.Price += svc.Price * int64(qty)
		if svc.Buffer > maxBuffer {
			maxBuffer = svc.Buffer
		}
	}
	if len(q.Lines) > 0 {
		q.Duration += maxBuffer
	}
	return q
}
