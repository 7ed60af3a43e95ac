package scheduling

import (
	"strconv"
	"strings"

	"barbershop/internal/domain"
)

// ProjectEndTime returns start + serviceMinutes as HH:MM. Buffer minutes are
// excluded by the caller: the client sees chair time, cleanup happens after.
func ProjectEndTime(start string, serviceMinutes int) (string, error) {
	m, err := clockToMinutes(start)
	if err != nil {
		return "", err
	}
	end := (m + serviceMinutes) % (24 * 60)
	if end < 0 {
		end += 24 * 60
	}
	return minutesToClock(end), nil
}

func clockToMinutes(clock string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(clock), ":", 2)
	if len(parts) != 2 {
		return 0, domain.ValidationError{Field: "time", Msg: "formato esperado HH:MM"}
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, domain.ValidationError{Field: "time", Msg: "hora fuera de rango"}
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil || mm < 0 || mm > 59 {
		return 0, domain.ValidationError{Field: "time", Msg: "minutos fuera de rango"}
	}
	return h*60 + mm, nil
}
