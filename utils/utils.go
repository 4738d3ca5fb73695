package utils

import (
	"time"
)

// ISOTime formats t the way browsers print Date#toISOString.
func ISOTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
