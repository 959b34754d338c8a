package format

import (
	"fmt"
	"time"
)

// Duration renders a settlement duration in the most natural unit: seconds
// under a minute, minutes under an hour, hours under two days, days beyond.
func Duration(d time.Duration) string {
	s := int(d.Seconds())
	if s < 60 {
		return fmt.Sprintf("%ds", s)
	}
	m := s / 60
	sec := s % 60
	if m < 60 {
		return fmt.Sprintf("%d min %ds", m, sec)
	}
	h := m / 60
	min := m % 60
	if h < 48 {
		return fmt.Sprintf("%dh %dm", h, min)
	}
	days := h / 24
	return fmt.Sprintf("%dd %dh", days, h%24)
}

// Progress renders a progress percentage; values under 10% keep one decimal
// so early movement is visible.
func Progress(pct float64) string {
	if pct >= 100 {
		return "100%"
	}
	if pct < 10 {
		return fmt.Sprintf("%.1f%%", pct)
	}
	return fmt.Sprintf("%.0f%%", pct)
}
