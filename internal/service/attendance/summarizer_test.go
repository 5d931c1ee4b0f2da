package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yashxjain/hrsmile-backend-go/internal/domain/attendance"
)

func event(ts string, kind attendance.Kind, geoLocation string) attendance.NormalizedEvent {
	parsed, ok := attendance.ParseMobileDateTime(ts)
	if !ok {
		panic("bad timestamp in test: " + ts)
	}
	return attendance.NormalizedEvent{
		PunchEvent: attendance.PunchEvent{
			EmployeeID:  "E1",
			Timestamp:   parsed,
			GeoLocation: geoLocation,
		},
		Kind: kind,
	}
}

func TestSummarizeDay_FullDay(t *testing.T) {
	record := SummarizeDay("E1", "01/01/2024", []attendance.NormalizedEvent{
		event("2024-01-01T09:00", attendance.KindIn, "28.6139,77.2090"),
		event("2024-01-01T18:00", attendance.KindOut, "28.6200,77.2100"),
	})

	assert.Equal(t, "E1", record.EmployeeID)
	assert.Equal(t, "01/01/2024", record.Date)
	assert.Equal(t, "9:00 AM", record.FirstIn)
	assert.Equal(t, "28.6139,77.2090", record.FirstInLocation)
	assert.Equal(t, "6:00 PM", record.LastOut)
	assert.Equal(t, "28.6200,77.2100", record.LastOutLocation)
	assert.Equal(t, "9 hrs, 0 mins", record.WorkingHours)
	assert.Equal(t, attendance.KindOut, record.LastEvent)
	assert.False(t, record.Anomaly)
}

func TestSummarizeDay_NoOut(t *testing.T) {
	record := SummarizeDay("E1", "01/01/2024", []attendance.NormalizedEvent{
		event("2024-01-01T09:00", attendance.KindIn, ""),
	})

	assert.Equal(t, "9:00 AM", record.FirstIn)
	assert.Equal(t, attendance.NotAvailable, record.LastOut)
	assert.Equal(t, attendance.NotAvailable, record.LastOutLocation)
	assert.Equal(t, attendance.NotAvailable, record.WorkingHours)
	assert.False(t, record.Anomaly)
}

func TestSummarizeDay_NoIn(t *testing.T) {
	record := SummarizeDay("E1", "01/01/2024", []attendance.NormalizedEvent{
		event("2024-01-01T08:00", attendance.KindOut, ""),
	})

	assert.Equal(t, attendance.NotAvailable, record.FirstIn)
	assert.Equal(t, attendance.NotAvailable, record.FirstInLocation)
	assert.Equal(t, "8:00 AM", record.LastOut)
	assert.Equal(t, attendance.NotAvailable, record.WorkingHours)
	// No pair exists to compare, so this is not an anomaly.
	assert.False(t, record.Anomaly)
}

func TestSummarizeDay_OutBeforeIn_Anomaly(t *testing.T) {
	record := SummarizeDay("E1", "01/01/2024", []attendance.NormalizedEvent{
		event("2024-01-01T18:00", attendance.KindIn, ""),
		event("2024-01-01T09:00", attendance.KindOut, ""),
	})

	assert.Equal(t, "6:00 PM", record.FirstIn)
	assert.Equal(t, "9:00 AM", record.LastOut)
	assert.Equal(t, attendance.NotAvailable, record.WorkingHours,
		"a negative duration must never be rendered")
	assert.True(t, record.Anomaly)
}

func TestSummarizeDay_AnchorsFromUnorderedInput(t *testing.T) {
	record := SummarizeDay("E1", "01/01/2024", []attendance.NormalizedEvent{
		event("2024-01-01T13:00", attendance.KindOut, "13.0,77.0"),
		event("2024-01-01T09:15", attendance.KindIn, "9.0,77.0"),
		event("2024-01-01T18:45", attendance.KindOut, "18.0,77.0"),
		event("2024-01-01T14:00", attendance.KindIn, "14.0,77.0"),
	})

	assert.Equal(t, "9:15 AM", record.FirstIn)
	assert.Equal(t, "9.0,77.0", record.FirstInLocation)
	assert.Equal(t, "6:45 PM", record.LastOut)
	assert.Equal(t, "18.0,77.0", record.LastOutLocation)
	assert.Equal(t, "9 hrs, 30 mins", record.WorkingHours)
}

func TestSummarizeDay_UnknownCountsAsLastEvent(t *testing.T) {
	record := SummarizeDay("E1", "01/01/2024", []attendance.NormalizedEvent{
		event("2024-01-01T09:00", attendance.KindIn, ""),
		event("2024-01-01T18:00", attendance.KindOut, ""),
		event("2024-01-01T19:30", attendance.KindUnknown, ""),
	})

	assert.Equal(t, attendance.KindUnknown, record.LastEvent)
	// The anchors are unaffected by the trailing Unknown event.
	assert.Equal(t, "9:00 AM", record.FirstIn)
	assert.Equal(t, "6:00 PM", record.LastOut)
	assert.Equal(t, "9 hrs, 0 mins", record.WorkingHours)
}

func TestSummarizeDay_MissingGeoIsSentinel(t *testing.T) {
	record := SummarizeDay("E1", "01/01/2024", []attendance.NormalizedEvent{
		event("2024-01-01T09:00", attendance.KindIn, ""),
		event("2024-01-01T18:00", attendance.KindOut, "28.6,77.2"),
	})

	assert.Equal(t, attendance.NotAvailable, record.FirstInLocation)
	assert.Equal(t, "28.6,77.2", record.LastOutLocation)
}

func TestSummarizeDay_EmptyGroup(t *testing.T) {
	record := SummarizeDay("E1", "01/01/2024", nil)

	assert.Equal(t, attendance.NotAvailable, record.FirstIn)
	assert.Equal(t, attendance.NotAvailable, record.LastOut)
	assert.Equal(t, attendance.NotAvailable, record.WorkingHours)
	assert.Equal(t, attendance.KindUnknown, record.LastEvent)
}

func TestSummarizeDay_MinutesFloored(t *testing.T) {
	record := SummarizeDay("E1", "01/01/2024", []attendance.NormalizedEvent{
		event("2024-01-01T09:10", attendance.KindIn, ""),
		event("2024-01-01T17:55", attendance.KindOut, ""),
	})
	assert.Equal(t, "8 hrs, 45 mins", record.WorkingHours)
}

func TestSummarizeDay_Deterministic(t *testing.T) {
	events := []attendance.NormalizedEvent{
		event("2024-01-01T18:00", attendance.KindOut, ""),
		event("2024-01-01T09:00", attendance.KindIn, ""),
	}

	first := SummarizeDay("E1", "01/01/2024", events)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, SummarizeDay("E1", "01/01/2024", events))
	}
}

func TestSummarizeDay_DoesNotReorderCallerSlice(t *testing.T) {
	events := []attendance.NormalizedEvent{
		event("2024-01-01T18:00", attendance.KindOut, ""),
		event("2024-01-01T09:00", attendance.KindIn, ""),
		event("2024-01-01T13:00", attendance.KindUnknown, ""),
	}
	snapshot := make([]attendance.NormalizedEvent, len(events))
	copy(snapshot, events)

	SummarizeDay("E1", "01/01/2024", events)
	require.Equal(t, snapshot, events)
}

func TestSummarizeDay_TiedTimestampsKeepEncounterOrder(t *testing.T) {
	// Two Out events in the same minute: the later-encountered one is the
	// last in stable order, so its location wins.
	record := SummarizeDay("E1", "01/01/2024", []attendance.NormalizedEvent{
		event("2024-01-01T09:00", attendance.KindIn, ""),
		event("2024-01-01T18:00", attendance.KindOut, "1.0,1.0"),
		event("2024-01-01T18:00", attendance.KindOut, "2.0,2.0"),
	})
	assert.Equal(t, "2.0,2.0", record.LastOutLocation)
}

func TestSummarizeDay_TwelveHourClockEdges(t *testing.T) {
	cases := []struct {
		ts   string
		want string
	}{
		{"2024-01-01T00:05", "12:05 AM"},
		{"2024-01-01T12:00", "12:00 PM"},
		{"2024-01-01T23:59", "11:59 PM"},
	}
	for _, c := range cases {
		parsed, ok := attendance.ParseMobileDateTime(c.ts)
		require.True(t, ok)
		assert.Equal(t, c.want, parsed.Format(attendance.ClockLayout))
	}
}
