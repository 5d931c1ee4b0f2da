package policy

import "time"

type Policy struct {
	ID          string
	Name        string
	Description string
	URL         string
	CreatedAt   time.Time
}
