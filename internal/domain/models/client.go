package models

const (
	RetentionNew      = "nuevo"
	RetentionFrequent = "frecuente"
	RetentionAtRisk   = "en_riesgo"
	RetentionInactive = "inactivo"
)

// Client is derived from booking history; there is no separate signup flow.
type Client struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email,omitempty"`
	VisitCount    int    `json:"visit_count"`
	LastVisitDate string `json:"last_visit_date,omitempty"` // YYYY-MM-DD, completed visits only
	Retention     string `json:"retention"`
}
