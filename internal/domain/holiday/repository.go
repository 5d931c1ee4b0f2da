package holiday

import "context"

type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	List(ctx context.Context, year int) ([]Holiday, error)
	Delete(ctx context.Context, id string) error
}
