package booking

import (
	"errors"
	"strings"
	"time"
)

type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// IsDecided reports whether the booking reached a terminal state.
func (s Status) IsDecided() bool {
	return s == StatusApproved || s == StatusRejected
}

var ErrUnknownStateFilter = errors.New("unknown state filter")

// StateFilter narrows booking listings by status and by position of the
// booking period relative to now.
type StateFilter string

const (
	FilterAll      StateFilter = "ALL"
	FilterCurrent  StateFilter = "CURRENT"
	FilterPast     StateFilter = "PAST"
	FilterFuture   StateFilter = "FUTURE"
	FilterWaiting  StateFilter = "WAITING"
	FilterRejected StateFilter = "REJECTED"
)

func ParseStateFilter(s string) (StateFilter, error) {
	if s == "" {
		return FilterAll, nil
	}
	f := StateFilter(strings.ToUpper(s))
	switch f {
	case FilterAll, FilterCurrent, FilterPast, FilterFuture, FilterWaiting, FilterRejected:
		return f, nil
	default:
		return "", ErrUnknownStateFilter
	}
}

func (f StateFilter) Matches(status Status, period Period, now time.Time) bool {
	switch f {
	case FilterCurrent:
		return !period.Start().After(now) && now.Before(period.End())
	case FilterPast:
		return !period.End().After(now)
	case FilterFuture:
		return period.Start().After(now)
	case FilterWaiting:
		return status == StatusWaiting
	case FilterRejected:
		return status == StatusRejected
	default:
		return true
	}
}
