package attendance

import "context"

// AttendanceService defines punch capture and attendance reconciliation.
type AttendanceService interface {
	// Punch records a raw clock event, enforcing office geofencing when enabled.
	Punch(ctx context.Context, req PunchRequest) (PunchResponse, error)

	// ListAttendance reconciles the stored punch batch into daily records,
	// applying the role-based employee filter and pagination.
	ListAttendance(ctx context.Context, req ListAttendanceRequest) (ListAttendanceResponse, error)

	// ExportAttendance produces the CSV export of the reconciled records.
	ExportAttendance(ctx context.Context, req ExportAttendanceRequest) ([]byte, error)
}
