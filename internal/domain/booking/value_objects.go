package booking

import (
	"errors"
	"time"
)

var (
	ErrMissingPeriodBound = errors.New("booking start and end must both be set")
	ErrInvalidPeriod      = errors.New("booking start must be strictly before end")
)

// Period is the half-open interval [start, end) a booking claims.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if start.IsZero() || end.IsZero() {
		return Period{}, ErrMissingPeriodBound
	}
	if !start.Before(end) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{start: start, end: end}, nil
}

func ReconstructPeriod(start, end time.Time) Period {
	return Period{start: start, end: end}
}

func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time   { return p.end }

func (p Period) Duration() time.Duration {
	return p.end.Sub(p.start)
}

// Overlaps reports whether two half-open intervals share at least one
// instant: s1 < e2 AND s2 < e1. Touching boundaries do not overlap.
func (p Period) Overlaps(other Period) bool {
	return p.start.Before(other.end) && other.start.Before(p.end)
}

// EndedBy reports whether the rental period has concluded at the given time.
func (p Period) EndedBy(now time.Time) bool {
	return !p.end.After(now)
}
