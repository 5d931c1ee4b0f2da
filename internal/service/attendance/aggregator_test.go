package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yashxjain/hrsmile-backend-go/internal/domain/attendance"
)

func record(empID, date string) attendance.DailyRecord {
	return attendance.DailyRecord{
		EmployeeID:   empID,
		Date:         date,
		FirstIn:      "9:00 AM",
		LastOut:      "6:00 PM",
		WorkingHours: "9 hrs, 0 mins",
		LastEvent:    attendance.KindOut,
	}
}

func TestAggregateRecords_Ordering(t *testing.T) {
	set := AggregateRecords([]attendance.DailyRecord{
		record("E2", "01/01/2024"),
		record("E1", "15/02/2024"),
		record("E1", "01/01/2024"),
		record("E3", "31/12/2023"),
		record("E1", "02/01/2024"),
	})

	got := set.All()
	require.Len(t, got, 5)

	// Most recent date first; equal dates order by employee id ascending.
	assert.Equal(t, "15/02/2024", got[0].Date)
	assert.Equal(t, "02/01/2024", got[1].Date)
	assert.Equal(t, "01/01/2024", got[2].Date)
	assert.Equal(t, "E1", got[2].EmployeeID)
	assert.Equal(t, "01/01/2024", got[3].Date)
	assert.Equal(t, "E2", got[3].EmployeeID)
	assert.Equal(t, "31/12/2023", got[4].Date)
}

func TestAggregateRecords_CrossesMonthAndYearBoundaries(t *testing.T) {
	// Lexical ordering of DD/MM/YYYY strings would put 02/01 after 01/02;
	// the aggregator must compare calendar dates.
	set := AggregateRecords([]attendance.DailyRecord{
		record("E1", "02/01/2024"),
		record("E1", "01/02/2024"),
		record("E1", "31/12/2023"),
	})

	got := set.All()
	assert.Equal(t, "01/02/2024", got[0].Date)
	assert.Equal(t, "02/01/2024", got[1].Date)
	assert.Equal(t, "31/12/2023", got[2].Date)
}

func TestAggregateRecords_InputUntouched(t *testing.T) {
	input := []attendance.DailyRecord{
		record("E1", "01/01/2024"),
		record("E1", "02/01/2024"),
	}
	snapshot := make([]attendance.DailyRecord, len(input))
	copy(snapshot, input)

	AggregateRecords(input)
	assert.Equal(t, snapshot, input)
}

func TestRecordSet_Slice(t *testing.T) {
	set := AggregateRecords([]attendance.DailyRecord{
		record("E1", "01/01/2024"),
		record("E1", "02/01/2024"),
		record("E1", "03/01/2024"),
		record("E1", "04/01/2024"),
		record("E1", "05/01/2024"),
	})

	assert.Equal(t, 5, set.Total())

	page := set.Slice(0, 2)
	require.Len(t, page, 2)
	assert.Equal(t, "05/01/2024", page[0].Date)
	assert.Equal(t, "04/01/2024", page[1].Date)

	page = set.Slice(4, 2)
	require.Len(t, page, 1)
	assert.Equal(t, "01/01/2024", page[0].Date)

	assert.Empty(t, set.Slice(5, 2))
	assert.Empty(t, set.Slice(-1, 2))
	assert.Empty(t, set.Slice(0, -1))
	assert.Empty(t, set.Slice(0, 0))

	// Slicing never disturbs the set itself.
	assert.Equal(t, 5, set.Total())
	assert.Equal(t, "05/01/2024", set.All()[0].Date)
}
