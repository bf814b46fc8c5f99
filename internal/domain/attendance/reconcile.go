package attendance

import (
	"cmp"
	"slices"

	"github.com/cmlabs-hris/hr-portal-backend/internal/domain/leave"
)

// Reconcile annotates each row with the approved leave request covering its
// date for the same employee. Non-approved requests are ignored. When more
// than one approved request covers a date, the most recently approved one is
// attributed (then the later start date, then the larger ID) so the result
// does not depend on input order. Rows or requests with a zero date never
// match.
//
// The output has one entry per input row, in input order. Reconcile does not
// modify its arguments.
func Reconcile(rows []Record, leaves []leave.Request) []EnrichedRecord {
	candidates := make(map[string][]leave.Request)
	for _, l := range leaves {
		if !l.IsApproved() || !l.Range().Valid() {
			continue
		}
		candidates[l.EmployeeID] = append(candidates[l.EmployeeID], l)
	}
	for _, list := range candidates {
		slices.SortStableFunc(list, attributionOrder)
	}

	enriched := make([]EnrichedRecord, 0, len(rows))
	for _, row := range rows {
		e := EnrichedRecord{Record: row}
		for i := range candidates[row.EmployeeID] {
			l := candidates[row.EmployeeID][i]
			if l.Covers(row.Date) {
				e.IsOnLeave = true
				e.LeaveDetails = &l
				break
			}
		}
		enriched = append(enriched, e)
	}
	return enriched
}

// attributionOrder sorts preferred requests first.
func attributionOrder(a, b leave.Request) int {
	if c := compareApprovedAt(a, b); c != 0 {
		return -c
	}
	if c := a.StartDate.Compare(b.StartDate); c != 0 {
		return -c
	}
	return -cmp.Compare(a.ID, b.ID)
}

// compareApprovedAt orders by approval time; a missing time sorts oldest.
func compareApprovedAt(a, b leave.Request) int {
	switch {
	case a.ApprovedAt == nil && b.ApprovedAt == nil:
		return 0
	case a.ApprovedAt == nil:
		return -1
	case b.ApprovedAt == nil:
		return 1
	default:
		return a.ApprovedAt.Compare(*b.ApprovedAt)
	}
}

// SortByDateDesc orders rows newest first, breaking ties by employee ID.
func SortByDateDesc(rows []EnrichedRecord) {
	slices.SortStableFunc(rows, func(a, b EnrichedRecord) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.EmployeeID, b.EmployeeID)
	})
}
