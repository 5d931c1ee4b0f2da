package attendance

import (
	"github.com/yashxjain/hrsmile-backend-go/internal/domain/user"
	"github.com/yashxjain/hrsmile-backend-go/internal/pkg/validator"
)

// ========================================
// PUNCH CAPTURE DTOs
// ========================================

// PunchRequest records one raw clock event exactly as the device reports it.
// The timestamp stays a string end to end; reconciliation revalidates it.
type PunchRequest struct {
	EmployeeID     string  `json:"employee_id"`
	MobileDateTime string  `json:"mobile_date_time"`
	Event          string  `json:"event"`
	GeoLocation    *string `json:"geo_location"`
}

func (r *PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.MobileDateTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile_date_time",
			Message: "mobile_date_time is required",
		})
	} else if _, ok := ParseMobileDateTime(r.MobileDateTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile_date_time",
			Message: "mobile_date_time is not a recognized timestamp",
		})
	}

	if validator.IsEmpty(r.Event) {
		errs = append(errs, validator.ValidationError{
			Field:   "event",
			Message: "event label is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PunchResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	Timestamp   string `json:"timestamp"`
	Kind        Kind   `json:"kind"`
	GeoLocation string `json:"geo_location,omitempty"`
}

// ========================================
// RECONCILIATION DTOs
// ========================================

// RawPunchRow is the wire shape of one punch event as stored by the capture
// endpoint and as submitted by the legacy mobile client. Nothing about it is
// trusted; reconciliation validates every field.
type RawPunchRow struct {
	EmpID          string  `json:"EmpId"`
	MobileDateTime string  `json:"MobileDateTime"`
	Event          string  `json:"Event"`
	GeoLocation    *string `json:"GeoLocation"`
}

// ListAttendanceRequest carries the acting identity explicitly. Non-HR actors
// are always restricted to their own records regardless of EmployeeID.
type ListAttendanceRequest struct {
	ActorEmployeeID string
	ActorRole       user.Role
	EmployeeID      string // optional filter; empty means every employee (HR only)
	Page            int
	Limit           int
}

// ExportAttendanceRequest is ListAttendanceRequest without pagination.
type ExportAttendanceRequest struct {
	ActorEmployeeID string
	ActorRole       user.Role
	EmployeeID      string
}

// DailyRecordResponse is the output schema consumed by the table and calendar views.
type DailyRecordResponse struct {
	EmpID           string `json:"empId"`
	Date            string `json:"date"`
	FirstIn         string `json:"firstIn"`
	FirstInLocation string `json:"firstInLocation"`
	LastOut         string `json:"lastOut"`
	LastOutLocation string `json:"lastOutLocation"`
	WorkingHours    string `json:"workingHours"`
	LastEvent       string `json:"lastEvent"`
	Anomaly         bool   `json:"anomaly,omitempty"`
}

// SkippedEventDetail reports one excluded raw event alongside the partial result.
type SkippedEventDetail struct {
	Index      int    `json:"index"`
	EmployeeID string `json:"employee_id,omitempty"`
	Reason     string `json:"reason"`
}

type ListAttendanceResponse struct {
	Records []DailyRecordResponse `json:"records"`
	Skipped []SkippedEventDetail  `json:"skipped,omitempty"`
	Total   int                   `json:"total"`
	Page    int                   `json:"page"`
	Limit   int                   `json:"limit"`
}
