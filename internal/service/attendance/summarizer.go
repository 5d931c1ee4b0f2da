package attendance

import (
	"fmt"
	"math"
	"sort"

	"github.com/yashxjain/hrsmile-backend-go/internal/domain/attendance"
)

// SummarizeDay derives the daily record for one (employee, day) group.
// The anchor events are the earliest In and the latest Out of the day; either
// may be missing, in which case its fields stay at the N/A sentinel. The sort
// runs on a copy so the caller's slice keeps its order.
func SummarizeDay(employeeID string, date string, events []attendance.NormalizedEvent) attendance.DailyRecord {
	record := attendance.DailyRecord{
		EmployeeID:      employeeID,
		Date:            date,
		FirstIn:         attendance.NotAvailable,
		FirstInLocation: attendance.NotAvailable,
		LastOut:         attendance.NotAvailable,
		LastOutLocation: attendance.NotAvailable,
		WorkingHours:    attendance.NotAvailable,
		LastEvent:       attendance.KindUnknown,
	}

	if len(events) == 0 {
		return record
	}

	sorted := make([]attendance.NormalizedEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	var firstIn, lastOut *attendance.NormalizedEvent
	for i := range sorted {
		if sorted[i].Kind == attendance.KindIn {
			firstIn = &sorted[i]
			break
		}
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i].Kind == attendance.KindOut {
			lastOut = &sorted[i]
			break
		}
	}

	// The chronologically last event of the day, whatever its kind. Unknown
	// labels count here: the display shows what the device last reported.
	record.LastEvent = sorted[len(sorted)-1].Kind

	if firstIn != nil {
		record.FirstIn = firstIn.Timestamp.Format(attendance.ClockLayout)
		record.FirstInLocation = formatGeo(firstIn.GeoLocation)
	}
	if lastOut != nil {
		record.LastOut = lastOut.Timestamp.Format(attendance.ClockLayout)
		record.LastOutLocation = formatGeo(lastOut.GeoLocation)
	}

	if firstIn != nil && lastOut != nil {
		diffMinutes := int(math.Floor(lastOut.Timestamp.Sub(firstIn.Timestamp).Minutes()))
		if diffMinutes < 0 {
			// The only Out of the day precedes the first In. Flag the day
			// rather than showing a negative duration.
			record.Anomaly = true
		} else {
			record.WorkingHours = fmt.Sprintf("%d hrs, %d mins", diffMinutes/60, diffMinutes%60)
		}
	}

	return record
}

func formatGeo(geoLocation string) string {
	if geoLocation == "" {
		return attendance.NotAvailable
	}
	return geoLocation
}
