// Package util holds small formatting helpers shared by logging call sites.
package util

import (
	"fmt"
	"strings"
	"time"
)

// phoneVisibleDigits is how many trailing digits MaskPhone leaves readable.
const phoneVisibleDigits = 3

// MaskPhone hides all but the last three characters of a phone number for logs.
func MaskPhone(phone string) string {
	if len(phone) <= phoneVisibleDigits {
		return phone
	}

	return strings.Repeat("*", len(phone)-phoneVisibleDigits) + phone[len(phone)-phoneVisibleDigits:]
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration formats short operator-facing durations ("850ms", "45s", "2m30s", "1h30m").
func FormatDuration(duration time.Duration) string {
	if duration < time.Second {
		return fmt.Sprintf("%dms", duration.Milliseconds())
	}

	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
