package employee

import "time"

// Employee is keyed by EmpID, the opaque identifier punch events and JWT
// claims carry.
type Employee struct {
	EmpID            string
	Name             string
	Email            string
	Mobile           string
	Role             string // "HR" or "Employee"
	ReportingManager *string
	Shift            string

	// Office assignment; the fence applies to punch capture only.
	OfficeName      string
	OfficeLatLong   string // "lat,long"
	IsGeofence      bool
	GeofenceRadiusM int

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
