package attendance

import (
	"sort"
	"time"

	"github.com/yashxjain/hrsmile-backend-go/internal/domain/attendance"
)

// RecordSet is an ordered, read-only collection of daily records: most recent
// day first, ties broken by employee id ascending. Both the table and the
// calendar views depend on this ordering.
type RecordSet struct {
	records []attendance.DailyRecord
}

// AggregateRecords sorts records into the canonical order on a fresh slice;
// the input is never reordered.
func AggregateRecords(records []attendance.DailyRecord) RecordSet {
	sorted := make([]attendance.DailyRecord, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		di := parseDateKey(sorted[i].Date)
		dj := parseDateKey(sorted[j].Date)
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return sorted[i].EmployeeID < sorted[j].EmployeeID
	})

	return RecordSet{records: sorted}
}

func parseDateKey(date string) time.Time {
	t, err := time.Parse(attendance.DateLayout, date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Total returns the number of records in the set.
func (s RecordSet) Total() int {
	return len(s.records)
}

// All returns the records in canonical order.
func (s RecordSet) All() []attendance.DailyRecord {
	return s.records
}

// Slice returns the page starting at offset with at most limit records.
// Out-of-range bounds clamp to an empty page; the set is untouched.
func (s RecordSet) Slice(offset int, limit int) []attendance.DailyRecord {
	if offset < 0 || limit < 0 || offset >= len(s.records) {
		return nil
	}
	end := offset + limit
	if end > len(s.records) {
		end = len(s.records)
	}
	return s.records[offset:end]
}
