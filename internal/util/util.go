package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Checksum returns the hex SHA256 of data. Asset keys are content addressed with it.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:])
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

// ParseBytes reads sizes such as "512", "100KB", "5 MB" or "1G" using 1024 multiples.
func ParseBytes(s string) (int64, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(s))
	trimmed = strings.TrimSuffix(trimmed, "B")

	multiplier := int64(1)
	if n := len(trimmed); n > 0 {
		if idx := strings.IndexByte("KMGT", trimmed[n-1]); idx >= 0 {
			multiplier = int64(1) << (10 * (idx + 1))
			trimmed = trimmed[:n-1]
		}
	}

	value, err := strconv.ParseInt(strings.TrimSpace(trimmed), 10, 64)
	if err != nil || value < 0 {
		return 0, errors.Errorf("invalid byte size: %q", s)
	}

	return value * multiplier, nil
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
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
