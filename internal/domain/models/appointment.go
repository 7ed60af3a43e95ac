package models

const (
	StatusPending   = "pendiente"
	StatusConfirmed = "confirmada"
	StatusCancelled = "cancelada"
	StatusCompleted = "completada"
)

type Appointment struct {
	ID           int64  `json:"id"`
	Code         string `json:"code"` // public lookup code
	BarberID     int64  `json:"barber_id"`
	BarberName   string `json:"barber_name,omitempty"`
	Date         string `json:"date"`       // YYYY-MM-DD
	StartTime    string `json:"start_time"` // HH:MM
	Duration     int    `json:"duration_minutes"`
	TotalPrice   int64  `json:"total_price"`
	ClientName   string `json:"client_name"`
	ClientPhone  string `json:"client_phone"`
	ClientEmail  string `json:"client_email,omitempty"`
	Notes        string `json:"notes,omitempty"`
	Status       string `json:"status"`
	CancelReason string `json:"cancel_reason,omitempty"`
	WalkIn       bool   `json:"walk_in"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// AppointmentService is one booked service line within an appointment.
type AppointmentService struct {
	AppointmentID int64  `json:"appointment_id"`
	ServiceID     int64  `json:"service_id"`
	ServiceName   string `json:"service_name,omitempty"`
	Quantity      int    `json:"quantity"`
	UnitPrice     int64  `json:"unit_price"`
}
