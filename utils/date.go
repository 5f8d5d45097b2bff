package utils

import (
	"fmt"
	"time"
)

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatDate renders a due date as "02 Januari 2006". Empty input yields "-"
// and unparseable input is returned unchanged.
func FormatDate(dateStr string) string {
	if dateStr == "" {
		return "-"
	}

	t, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		t, err = time.Parse(time.RFC3339, dateStr)
		if err != nil {
			return dateStr
		}
	}

	return fmt.Sprintf("%02d %s %d", t.Day(), indonesianMonths[t.Month()-1], t.Year())
}
