package utils

import (
	"log"
	"strings"
)

// LogEvent prints one standardized line per backend event so a booking can
// be traced end to end by request id. Keep messages summarized; never log
// client phone numbers or other contact data here.
func LogEvent(requestID, area, action, message string) {
	req := strings.TrimSpace(requestID)
	if req == "" {
		req = "-"
	}
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(area), action, req, message)
}
