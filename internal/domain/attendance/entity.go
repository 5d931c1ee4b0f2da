package attendance

import "time"

// Kind is the normalized classification of a punch event.
type Kind string

const (
	KindIn      Kind = "In"
	KindOut     Kind = "Out"
	KindUnknown Kind = "Unknown"
)

// NotAvailable is the sentinel used for any field that cannot be derived.
const NotAvailable = "N/A"

// PunchEvent is a single attendance action that passed schema validation.
// MobileDateTime keeps the client's timestamp string verbatim; Timestamp is
// its parsed value.
type PunchEvent struct {
	ID             string
	EmployeeID     string
	MobileDateTime string
	Timestamp      time.Time
	RawLabel       string
	GeoLocation    string // "lat,long"; empty when the device sent none
	CreatedAt      time.Time
}

// NormalizedEvent is a punch event together with its classified kind.
type NormalizedEvent struct {
	PunchEvent
	Kind Kind
}

// DailyRecord summarizes one employee's punches on one calendar day.
type DailyRecord struct {
	EmployeeID      string
	Date            string // DD/MM/YYYY
	FirstIn         string
	FirstInLocation string
	LastOut         string
	LastOutLocation string
	WorkingHours    string
	LastEvent       Kind

	// Anomaly marks a day whose matched Out precedes its matched In.
	// WorkingHours is N/A for such days instead of a negative duration.
	Anomaly bool
}
