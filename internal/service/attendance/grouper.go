package attendance

import (
	"strconv"

	"github.com/yashxjain/hrsmile-backend-go/internal/domain/attendance"
	"github.com/yashxjain/hrsmile-backend-go/internal/pkg/geo"
	"github.com/yashxjain/hrsmile-backend-go/internal/pkg/validator"
)

// ValidateBatch converts raw punch rows into normalized events. Rows missing
// an employee id or carrying an unparsable timestamp are excluded and reported;
// the rest of the batch is unaffected. Geo strings that do not parse as an
// in-range "lat,long" pair are cleared so they surface as the N/A sentinel
// downstream instead of a broken value.
func ValidateBatch(rows []attendance.RawPunchRow) ([]attendance.NormalizedEvent, []attendance.DataShapeError) {
	events := make([]attendance.NormalizedEvent, 0, len(rows))
	var skipped []attendance.DataShapeError

	for i, row := range rows {
		if validator.IsEmpty(row.EmpID) {
			skipped = append(skipped, attendance.DataShapeError{
				Index:  i,
				Reason: "missing employee id",
			})
			continue
		}

		ts, ok := attendance.ParseMobileDateTime(row.MobileDateTime)
		if !ok {
			skipped = append(skipped, attendance.DataShapeError{
				Index:      i,
				EmployeeID: row.EmpID,
				Reason:     "unparsable timestamp " + strconv.Quote(row.MobileDateTime),
			})
			continue
		}

		var geoLocation string
		if row.GeoLocation != nil && geo.IsValidLatLong(*row.GeoLocation) {
			geoLocation = *row.GeoLocation
		}

		events = append(events, attendance.NormalizedEvent{
			PunchEvent: attendance.PunchEvent{
				EmployeeID:     row.EmpID,
				MobileDateTime: row.MobileDateTime,
				Timestamp:      ts,
				RawLabel:       row.Event,
				GeoLocation:    geoLocation,
			},
			Kind: NormalizeKind(row.Event),
		})
	}

	return events, skipped
}

// GroupEvents partitions events by employee id and then by calendar day.
// The day key is derived solely from the timestamp. Events within a group keep
// their encounter order; the summarizer does its own sort.
func GroupEvents(events []attendance.NormalizedEvent) map[string]map[string][]attendance.NormalizedEvent {
	grouped := make(map[string]map[string][]attendance.NormalizedEvent)

	for _, event := range events {
		days, ok := grouped[event.EmployeeID]
		if !ok {
			days = make(map[string][]attendance.NormalizedEvent)
			grouped[event.EmployeeID] = days
		}
		dateKey := event.Timestamp.Format(attendance.DateLayout)
		days[dateKey] = append(days[dateKey], event)
	}

	return grouped
}
