package repository

import (
	"database/sql"
	"time"
)

// nullableFloat converts a scanned nullable REAL into a *float64.
// Returns nil for SQL NULL.
func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// unixSeconds renders an instant as fractional Unix epoch seconds,
// the representation the worksessions table stores.
func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
