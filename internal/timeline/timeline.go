// Package timeline implements the control-point machinery of an event: the
// ordered lifecycle points, the resolver that derives the current point and
// next deadline from the event schedule, and the schedule validator.
package timeline

import (
	"fmt"
	"time"
)

// Schedule holds the six timeline timestamps of an event. Any of them may be
// unset; an unset point is neither reached nor upcoming.
type Schedule struct {
	CreatedAt           *time.Time
	ApplicationsOpenAt  *time.Time
	ApplicationsCloseAt *time.Time
	ContractsStartAt    *time.Time
	EventStartAt        *time.Time
	EventEndAt          *time.Time
}

// points returns the schedule as (point, timestamp) pairs in lifecycle order.
func (s Schedule) points() []struct {
	code Point
	at   *time.Time
} {
	return []struct {
		code Point
		at   *time.Time
	}{
		{T0, s.CreatedAt},
		{Ti10, s.ApplicationsOpenAt},
		{Ti20, s.ApplicationsCloseAt},
		{Ti30, s.ContractsStartAt},
		{Ti40, s.EventStartAt},
		{Ti50, s.EventEndAt},
	}
}

// Resolve walks the schedule in lifecycle order and returns the latest point
// whose timestamp is at or before now, plus the timestamp of the first point
// still ahead. Unset timestamps are skipped. With no reachable timestamps the
// current point defaults to T0 and the deadline is nil.
//
// Resolve is pure and idempotent; the resolved point may be written back to
// storage as an advisory cache, but nothing depends on that write.
func Resolve(now time.Time, s Schedule) (Point, *time.Time) {
	current := T0
	var nextDeadline *time.Time

	for _, p := range s.points() {
		if p.at == nil {
			continue
		}
		if !p.at.After(now) {
			current = p.code
			continue
		}
		deadline := *p.at
		nextDeadline = &deadline
		break
	}

	return current, nextDeadline
}

// FieldError reports one schedule ordering violation, tagged with the name
// of the later field of the violated pair.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var fieldNames = map[Point]string{
	T0:   "createdAt",
	Ti10: "startApplicationsAt",
	Ti20: "endApplicationsAt",
	Ti30: "startContractsAt",
	Ti40: "startAt",
	Ti50: "endAt",
}

// Validate checks strict chronological ordering of adjacent schedule pairs
// (t0 < ti10 < ti20 < ti30 < ti40 < ti50). A pair with either endpoint unset
// is skipped; each violated pair yields one FieldError. Validate never
// rejects absence, only explicit inversions.
func Validate(s Schedule) []FieldError {
	var errs []FieldError

	points := s.points()
	for i := 0; i < len(points)-1; i++ {
		cur, next := points[i], points[i+1]
		if cur.at == nil || next.at == nil {
			continue
		}
		if !cur.at.Before(*next.at) {
			errs = append(errs, FieldError{
				Field:   fieldNames[next.code],
				Message: fmt.Sprintf("must be later than %s", fieldNames[cur.code]),
			})
		}
	}

	return errs
}
