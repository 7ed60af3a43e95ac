package models

// Service is a bookable catalog entry. Duration is the active chair time;
// Buffer is cleanup/reset minutes appended after the visit.
type Service struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Duration int    `json:"duration_minutes"`
	Buffer   int    `json:"buffer_minutes"`
	Category string `json:"category"`
	Active   bool   `json:"active"`
}

// SelectionLine is a normalized view of a multiset of selected services.
type SelectionLine struct {
	Service  Service `json:"service"`
	Quantity int     `json:"quantity"`
}
