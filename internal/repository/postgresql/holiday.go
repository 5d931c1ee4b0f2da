package postgresql

import (
	"context"

	"github.com/yashxjain/hrsmile-backend-go/internal/domain/holiday"
	"github.com/yashxjain/hrsmile-backend-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, name, holiday_date)
		VALUES ($1, $2, $3)
		RETURNING id, name, holiday_date, created_at
	`

	var created holiday.Holiday
	err := q.QueryRow(ctx, query, h.ID, h.Name, h.Date).Scan(
		&created.ID,
		&created.Name,
		&created.Date,
		&created.CreatedAt,
	)
	if err != nil {
		return holiday.Holiday{}, err
	}

	return created, nil
}

// List implements holiday.HolidayRepository. A zero year returns everything.
func (r *holidayRepositoryImpl) List(ctx context.Context, year int) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, holiday_date, created_at
		FROM holidays
		WHERE $1 = 0 OR EXTRACT(YEAR FROM holiday_date) = $1
		ORDER BY holiday_date
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.Date, &h.CreatedAt); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return holidays, nil
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}
