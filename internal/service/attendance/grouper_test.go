package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yashxjain/hrsmile-backend-go/internal/domain/attendance"
)

func strPtr(s string) *string { return &s }

func rawRow(empID, ts, event string) attendance.RawPunchRow {
	return attendance.RawPunchRow{EmpID: empID, MobileDateTime: ts, Event: event}
}

func TestValidateBatch_AcceptsKnownTimestampShapes(t *testing.T) {
	rows := []attendance.RawPunchRow{
		rawRow("E1", "2024-01-01T09:00", "In"),
		rawRow("E1", "2024-01-01T18:00:30", "Out"),
		rawRow("E1", "2024-01-02 08:45", "In"),
		rawRow("E1", "2024-01-02 17:30:00", "Out"),
		rawRow("E1", "2024-01-03T09:00:00Z", "In"),
	}

	events, skipped := ValidateBatch(rows)
	assert.Empty(t, skipped)
	require.Len(t, events, 5)
	assert.Equal(t, 9, events[0].Timestamp.Hour())
	assert.Equal(t, 18, events[1].Timestamp.Hour())
}

func TestValidateBatch_ReportsBadRows(t *testing.T) {
	rows := []attendance.RawPunchRow{
		rawRow("E1", "2024-01-01T09:00", "In"),
		rawRow("", "2024-01-01T10:00", "In"),
		rawRow("E2", "yesterday morning", "In"),
		rawRow("E1", "2024-01-01T18:00", "Out"),
	}

	events, skipped := ValidateBatch(rows)
	assert.Len(t, events, 2)
	require.Len(t, skipped, 2)

	assert.Equal(t, 1, skipped[0].Index)
	assert.Contains(t, skipped[0].Reason, "missing employee id")

	assert.Equal(t, 2, skipped[1].Index)
	assert.Equal(t, "E2", skipped[1].EmployeeID)
	assert.Contains(t, skipped[1].Reason, "unparsable timestamp")
}

func TestValidateBatch_GeoLocationSanitized(t *testing.T) {
	rows := []attendance.RawPunchRow{
		{EmpID: "E1", MobileDateTime: "2024-01-01T09:00", Event: "In", GeoLocation: strPtr("28.6139,77.2090")},
		{EmpID: "E1", MobileDateTime: "2024-01-01T10:00", Event: "In", GeoLocation: strPtr("not-a-location")},
		{EmpID: "E1", MobileDateTime: "2024-01-01T11:00", Event: "In", GeoLocation: nil},
		{EmpID: "E1", MobileDateTime: "2024-01-01T12:00", Event: "In", GeoLocation: strPtr("99.9,200.1")},
	}

	events, skipped := ValidateBatch(rows)
	assert.Empty(t, skipped, "bad geo must not exclude the event")
	require.Len(t, events, 4)
	assert.Equal(t, "28.6139,77.2090", events[0].GeoLocation)
	assert.Empty(t, events[1].GeoLocation)
	assert.Empty(t, events[2].GeoLocation)
	assert.Empty(t, events[3].GeoLocation)
}

func TestValidateBatch_DoesNotMutateInput(t *testing.T) {
	rows := []attendance.RawPunchRow{
		rawRow("E1", "2024-01-01T18:00", "Out"),
		rawRow("E1", "2024-01-01T09:00", "In"),
	}
	snapshot := make([]attendance.RawPunchRow, len(rows))
	copy(snapshot, rows)

	ValidateBatch(rows)
	assert.Equal(t, snapshot, rows)
}

func TestGroupEvents(t *testing.T) {
	events, skipped := ValidateBatch([]attendance.RawPunchRow{
		rawRow("E1", "2024-01-01T09:00", "In"),
		rawRow("E2", "2024-01-01T09:30", "In"),
		rawRow("E1", "2024-01-01T18:00", "Out"),
		rawRow("E1", "2024-01-02T09:05", "In"),
	})
	require.Empty(t, skipped)

	grouped := GroupEvents(events)
	require.Len(t, grouped, 2)
	require.Len(t, grouped["E1"], 2)
	require.Len(t, grouped["E2"], 1)

	day := grouped["E1"]["01/01/2024"]
	require.Len(t, day, 2)
	// Encounter order preserved within the group
	assert.Equal(t, attendance.KindIn, day[0].Kind)
	assert.Equal(t, attendance.KindOut, day[1].Kind)

	assert.Len(t, grouped["E1"]["02/01/2024"], 1)
	assert.Len(t, grouped["E2"]["01/01/2024"], 1)
}

func TestGroupEvents_DateDerivedFromTimestampOnly(t *testing.T) {
	// A label mentioning another date must not influence the bucket.
	events, _ := ValidateBatch([]attendance.RawPunchRow{
		rawRow("E1", "2024-03-05T09:00", "In: office visit 2024-01-01"),
	})

	grouped := GroupEvents(events)
	require.Contains(t, grouped["E1"], "05/03/2024")
}

func TestGroupEvents_Totality(t *testing.T) {
	events, _ := ValidateBatch([]attendance.RawPunchRow{
		rawRow("E1", "2024-01-01T09:00", "In"),
		rawRow("E2", "2024-01-01T09:00", "Out"),
		rawRow("E3", "2024-01-02T09:00", "Break"),
		rawRow("E1", "2024-01-03T09:00", "In"),
	})

	grouped := GroupEvents(events)
	total := 0
	for _, days := range grouped {
		for _, dayEvents := range days {
			total += len(dayEvents)
		}
	}
	assert.Equal(t, len(events), total, "every valid event lands in exactly one bucket")
}
