// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"strconv"
)

// ParseSeconds parses the integer seconds captured from /proc/uptime.
//
// Returns:
//   - The number of seconds
//   - An error if s is not a decimal number or does not fit in 64 bits
func ParseSeconds(s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse uptime seconds %q: %w", s, err)
	}
	return n, nil
}

// FormatUptime renders whole hours and the remaining minutes.
//
// Example: FormatUptime(7325) returns "2h 2m"
func FormatUptime(seconds uint64) string {
	hours := seconds / (60 * 60)
	minutes := (seconds % (60 * 60)) / 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// FormatMemory renders used and total megabytes as captured from free -m.
//
// Example: FormatMemory("3211", "7982") returns "3211m / 7982m"
func FormatMemory(used, total string) string {
	return fmt.Sprintf("%sm / %sm", used, total)
}
