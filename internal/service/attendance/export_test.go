package attendance

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yashxjain/hrsmile-backend-go/internal/domain/attendance"
)

func TestExportCSV_RoundTrip(t *testing.T) {
	set := AggregateRecords([]attendance.DailyRecord{
		{
			EmployeeID:      "E1",
			Date:            "01/01/2024",
			FirstIn:         "9:00 AM",
			FirstInLocation: "28.6139,77.2090",
			LastOut:         "6:00 PM",
			LastOutLocation: "28.6200,77.2100",
			WorkingHours:    "9 hrs, 0 mins",
			LastEvent:       attendance.KindOut,
		},
		{
			EmployeeID:      "E2",
			Date:            "01/01/2024",
			FirstIn:         "N/A",
			FirstInLocation: "N/A",
			LastOut:         "8:00 AM",
			LastOutLocation: "N/A",
			WorkingHours:    "N/A",
			LastEvent:       attendance.KindOut,
		},
	})

	data, err := ExportCSV(set)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, lines, 3, "1 header + N rows")

	parsed, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, 3)

	assert.Equal(t, ExportHeader, parsed[0])
	for _, row := range parsed[1:] {
		assert.Len(t, row, len(ExportHeader))
	}

	assert.Equal(t, []string{"E1", "01/01/2024", "9:00 AM", "28.6139,77.2090", "6:00 PM", "28.6200,77.2100", "9 hrs, 0 mins", "Out"}, parsed[1])
	assert.Equal(t, []string{"E2", "01/01/2024", "N/A", "N/A", "8:00 AM", "N/A", "N/A", "Out"}, parsed[2])
}

func TestExportCSV_EmptySet(t *testing.T) {
	data, err := ExportCSV(AggregateRecords(nil))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, lines, 1, "header only")
}

func TestExportRow_FieldOrderMatchesHeader(t *testing.T) {
	row := ExportRow(attendance.DailyRecord{
		EmployeeID:      "E9",
		Date:            "05/03/2024",
		FirstIn:         "9:05 AM",
		FirstInLocation: "N/A",
		LastOut:         "5:55 PM",
		LastOutLocation: "N/A",
		WorkingHours:    "8 hrs, 50 mins",
		LastEvent:       attendance.KindOut,
	})
	assert.Len(t, row, len(ExportHeader))
	assert.Equal(t, "E9", row[0])
	assert.Equal(t, "Out", row[len(row)-1])
}
