package models

type Barber struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	Email          string  `json:"email"`
	CommissionRate float64 `json:"commission_rate"` // shop share, 0..1
	Active         bool    `json:"active"`
}

// WorkingHours defines one weekday block of a barber's weekly schedule.
// Times are "HH:MM" in the shop's timezone.
type WorkingHours struct {
	ID       int64  `json:"id"`
	BarberID int64  `json:"barber_id"`
	Weekday  int    `json:"weekday"` // 0 = Sunday
	Start    string `json:"start_time"`
	End      string `json:"end_time"`
	Active   bool   `json:"active"`
}
