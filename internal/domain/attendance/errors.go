package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors
var (
	ErrOutsideAllowedRadius = errors.New("you are outside the allowed office radius")
	ErrGeoLocationRequired  = errors.New("geo location is required for geofenced offices")
	ErrPunchFetchFailed     = errors.New("could not retrieve punch events")
)

// DataShapeError reports a single raw event that failed schema validation and
// was excluded from reconciliation. The batch itself still succeeds.
type DataShapeError struct {
	Index      int    // position of the row in the input batch
	EmployeeID string // may be empty when that is what failed validation
	Reason     string
}

func (e DataShapeError) Error() string {
	if e.EmployeeID == "" {
		return fmt.Sprintf("event %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("event %d (employee %s): %s", e.Index, e.EmployeeID, e.Reason)
}
