package calendar

// Range is an inclusive span of days.
type Range struct {
	Start Date
	End   Date
}

func NewRange(start, end Date) (Range, error) {
	if start.IsZero() || end.IsZero() {
		return Range{}, ErrInvalidDate
	}
	if end.Before(start) {
		return Range{}, ErrInvalidRange
	}
	return Range{Start: start, End: end}, nil
}

// Day is the single-day range [d, d].
func Day(d Date) Range {
	return Range{Start: d, End: d}
}

// LastDays is the n-day range ending on (and including) end.
func LastDays(end Date, n int) Range {
	if n < 1 {
		n = 1
	}
	return Range{Start: end.AddDays(-(n - 1)), End: end}
}

// Valid reports whether both bounds are set and ordered.
func (r Range) Valid() bool {
	return !r.Start.IsZero() && !r.End.IsZero() && !r.End.Before(r.Start)
}

// Contains reports whether d lies within r, bounds included. An invalid range
// or zero date never matches.
func (r Range) Contains(d Date) bool {
	if !r.Valid() || d.IsZero() {
		return false
	}
	return !d.Before(r.Start) && !d.After(r.End)
}

// Overlaps reports whether r and o share at least one day.
func (r Range) Overlaps(o Range) bool {
	if !r.Valid() || !o.Valid() {
		return false
	}
	return !r.Start.After(o.End) && !r.End.Before(o.Start)
}

// Days returns the number of days in r, or 0 when r is invalid.
func (r Range) Days() int {
	if !r.Valid() {
		return 0
	}
	return int(r.End.Time().Sub(r.Start.Time()).Hours()/24) + 1
}

// Dates lists every day in r in ascending order.
func (r Range) Dates() []Date {
	n := r.Days()
	dates := make([]Date, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, r.Start.AddDays(i))
	}
	return dates
}
