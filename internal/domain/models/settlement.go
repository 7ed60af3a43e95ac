package models

// Settlement is a per-barber payout over a date range (liquidación).
type Settlement struct {
	BarberID       int64            `json:"barber_id"`
	BarberName     string           `json:"barber_name"`
	From           string           `json:"from"` // YYYY-MM-DD inclusive
	To             string           `json:"to"`   // YYYY-MM-DD inclusive
	CommissionRate float64          `json:"commission_rate"`
	Gross          int64            `json:"gross"`
	Commission     int64            `json:"commission"` // shop share
	Payout         int64            `json:"payout"`     // barber share
	Lines          []SettlementLine `json:"lines"`
}

type SettlementLine struct {
	AppointmentID int64  `json:"appointment_id"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	ClientName    string `json:"client_name"`
	Total         int64  `json:"total"`
}
