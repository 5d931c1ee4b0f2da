package postgresql

import (
	"context"

	"github.com/yashxjain/hrsmile-backend-go/internal/domain/attendance"
	"github.com/yashxjain/hrsmile-backend-go/internal/pkg/database"
)

type punchEventRepositoryImpl struct {
	db *database.DB
}

func NewPunchEventRepository(db *database.DB) attendance.PunchEventRepository {
	return &punchEventRepositoryImpl{db: db}
}

// Create implements attendance.PunchEventRepository. The mobile timestamp is
// stored as the raw text the client sent; reconciliation re-parses it on read.
func (r *punchEventRepositoryImpl) Create(ctx context.Context, event attendance.PunchEvent) (attendance.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punch_events (id, employee_id, mobile_date_time, event_label, geo_location)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
		RETURNING id, employee_id, mobile_date_time, event_label, COALESCE(geo_location, ''), created_at
	`

	var created attendance.PunchEvent
	err := q.QueryRow(ctx, query,
		event.ID,
		event.EmployeeID,
		event.MobileDateTime,
		event.RawLabel,
		event.GeoLocation,
	).Scan(
		&created.ID,
		&created.EmployeeID,
		&created.MobileDateTime,
		&created.RawLabel,
		&created.GeoLocation,
		&created.CreatedAt,
	)
	if err != nil {
		return attendance.PunchEvent{}, err
	}

	created.Timestamp = event.Timestamp
	return created, nil
}

// ListRaw implements attendance.PunchEventRepository. Rows come back in the
// untrusted wire shape; no filtering or parsing happens here beyond the
// optional employee restriction.
func (r *punchEventRepositoryImpl) ListRaw(ctx context.Context, employeeID string) ([]attendance.RawPunchRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, mobile_date_time, event_label, geo_location
		FROM punch_events
		WHERE $1 = '' OR employee_id = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []attendance.RawPunchRow
	for rows.Next() {
		var row attendance.RawPunchRow
		if err := rows.Scan(&row.EmpID, &row.MobileDateTime, &row.Event, &row.GeoLocation); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
