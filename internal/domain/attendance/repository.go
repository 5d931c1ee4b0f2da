package attendance

import "context"

// PunchEventRepository is the retrieval collaborator for raw punch events.
// ListRaw returns rows in the untrusted wire shape; reconciliation owns all
// validation so that rows written by older clients are handled the same way
// as fresh ones.
type PunchEventRepository interface {
	// Create stores a punch event verbatim.
	Create(ctx context.Context, event PunchEvent) (PunchEvent, error)

	// ListRaw retrieves the raw batch, optionally restricted to one employee.
	// An empty employeeID returns every employee's events.
	ListRaw(ctx context.Context, employeeID string) ([]RawPunchRow, error)
}
