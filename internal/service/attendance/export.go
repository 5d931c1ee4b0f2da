package attendance

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/yashxjain/hrsmile-backend-go/internal/domain/attendance"
)

// ExportHeader is the first row of the CSV export.
var ExportHeader = []string{"Emp ID", "Date", "In", "In Location", "Out", "Out Location", "Working Hours", "Last Event"}

// ExportRow flattens one record into the export column order.
func ExportRow(r attendance.DailyRecord) []string {
	return []string{
		r.EmployeeID,
		r.Date,
		r.FirstIn,
		r.FirstInLocation,
		r.LastOut,
		r.LastOutLocation,
		r.WorkingHours,
		string(r.LastEvent),
	}
}

// ExportCSV renders the record set as UTF-8 CSV: one header line plus one line
// per record.
func ExportCSV(set RecordSet) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(ExportHeader); err != nil {
		return nil, fmt.Errorf("failed to write export header: %w", err)
	}
	for _, r := range set.All() {
		if err := w.Write(ExportRow(r)); err != nil {
			return nil, fmt.Errorf("failed to write export row for %s %s: %w", r.EmployeeID, r.Date, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush export: %w", err)
	}
	return buf.Bytes(), nil
}
