package domain

// DateLayout is the calendar-day key stored in the worksessions table.
const DateLayout = "02-01-2006"

// WorkSession is one work interval as fractional Unix timestamps.
// StopTime is nil while the session is still running.
type WorkSession struct {
	StartTime float64
	StopTime  *float64
}

// Closed reports whether the session has a recorded stop time.
func (s WorkSession) Closed() bool {
	return s.StopTime != nil
}

// Hours returns the session length in hours. An open session
// contributes zero until it is closed.
func (s WorkSession) Hours() float64 {
	if s.StopTime == nil {
		return 0
	}
	return (*s.StopTime - s.StartTime) / 3600
}

// WorkSessionRecord is a persisted session row. Rows are append-only:
// ending a session sets StopTime on the existing row, never inserts.
type WorkSessionRecord struct {
	ID        int64
	Date      string
	StartTime float64
	StopTime  *float64
}

// Open reports whether the record's session is still running.
func (r *WorkSessionRecord) Open() bool {
	return r.StopTime == nil
}

// Session returns the record's interval without its storage identity.
func (r *WorkSessionRecord) Session() WorkSession {
	return WorkSession{StartTime: r.StartTime, StopTime: r.StopTime}
}

// DailyHours is the aggregated total for one calendar day, rounded to
// two decimal places. Computed on demand, never stored.
type DailyHours struct {
	Date  string
	Hours float64
}
