package attendance

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yashxjain/hrsmile-backend-go/internal/domain/attendance"
	"github.com/yashxjain/hrsmile-backend-go/internal/domain/employee"
	"github.com/yashxjain/hrsmile-backend-go/internal/domain/user"
	"github.com/yashxjain/hrsmile-backend-go/internal/pkg/database"
	"github.com/yashxjain/hrsmile-backend-go/internal/pkg/geo"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ReconcileResult carries the aggregated daily records plus one entry per raw
// row that failed schema validation.
type ReconcileResult struct {
	Records RecordSet
	Skipped []attendance.DataShapeError
}

// Reconcile turns a finite batch of raw punch rows into daily attendance
// records. employeeID optionally restricts the output to one employee; empty
// means everyone in the batch. Reconcile never fails and never mutates rows:
// bad rows are excluded and reported, anomalous days are flagged, and each
// call returns freshly allocated output.
func Reconcile(rows []attendance.RawPunchRow, employeeID string) ReconcileResult {
	events, skipped := ValidateBatch(rows)

	if employeeID != "" {
		filtered := events[:0:0]
		for _, e := range events {
			if e.EmployeeID == employeeID {
				filtered = append(filtered, e)
			}
		}
		events = filtered
	}

	var records []attendance.DailyRecord
	for empID, days := range GroupEvents(events) {
		for date, dayEvents := range days {
			records = append(records, SummarizeDay(empID, date, dayEvents))
		}
	}

	return ReconcileResult{
		Records: AggregateRecords(records),
		Skipped: skipped,
	}
}

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.PunchEventRepository
	employee.EmployeeRepository
}

func NewAttendanceService(
	db *database.DB,
	punchRepo attendance.PunchEventRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		PunchEventRepository: punchRepo,
		EmployeeRepository:   employeeRepo,
	}
}

// Punch implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Punch(ctx context.Context, req attendance.PunchRequest) (attendance.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PunchResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByEmpID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.PunchResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.PunchResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	var geoLocation string
	if req.GeoLocation != nil {
		geoLocation = *req.GeoLocation
	}

	if emp.IsGeofence {
		if err := s.checkGeofence(emp, geoLocation); err != nil {
			return attendance.PunchResponse{}, err
		}
	}

	// Validated above
	ts, _ := attendance.ParseMobileDateTime(req.MobileDateTime)

	event := attendance.PunchEvent{
		ID:             uuid.New().String(),
		EmployeeID:     req.EmployeeID,
		MobileDateTime: req.MobileDateTime,
		Timestamp:      ts,
		RawLabel:       req.Event,
		GeoLocation:    geoLocation,
	}

	created, err := s.PunchEventRepository.Create(ctx, event)
	if err != nil {
		return attendance.PunchResponse{}, fmt.Errorf("failed to store punch event: %w", err)
	}

	return attendance.PunchResponse{
		ID:          created.ID,
		EmployeeID:  created.EmployeeID,
		Timestamp:   created.MobileDateTime,
		Kind:        NormalizeKind(created.RawLabel),
		GeoLocation: created.GeoLocation,
	}, nil
}

func (s *AttendanceServiceImpl) checkGeofence(emp employee.Employee, geoLocation string) error {
	if geoLocation == "" {
		return attendance.ErrGeoLocationRequired
	}

	lat, long, err := geo.ParseLatLong(geoLocation)
	if err != nil {
		return attendance.ErrGeoLocationRequired
	}

	officeLat, officeLong, err := geo.ParseLatLong(emp.OfficeLatLong)
	if err != nil {
		// Office without usable coordinates cannot enforce its fence.
		return nil
	}

	radius := float64(emp.GeofenceRadiusM)
	if radius <= 0 {
		radius = 200
	}

	if geo.HaversineDistance(lat, long, officeLat, officeLong) > radius {
		return attendance.ErrOutsideAllowedRadius
	}
	return nil
}

// resolveEmployeeFilter applies the visibility policy: HR may look at anyone
// (or everyone, with an empty filter); every other role sees only itself.
func resolveEmployeeFilter(actorRole user.Role, actorEmployeeID string, requested string) string {
	if actorRole == user.RoleHR {
		return requested
	}
	return actorEmployeeID
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, req attendance.ListAttendanceRequest) (attendance.ListAttendanceResponse, error) {
	filter := resolveEmployeeFilter(req.ActorRole, req.ActorEmployeeID, req.EmployeeID)

	rows, err := s.PunchEventRepository.ListRaw(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("%w: %v", attendance.ErrPunchFetchFailed, err)
	}

	result := Reconcile(rows, filter)

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	pageRecords := result.Records.Slice((page-1)*limit, limit)

	records := make([]attendance.DailyRecordResponse, 0, len(pageRecords))
	for _, r := range pageRecords {
		records = append(records, toRecordResponse(r))
	}

	return attendance.ListAttendanceResponse{
		Records: records,
		Skipped: toSkippedDetails(result.Skipped),
		Total:   result.Records.Total(),
		Page:    page,
		Limit:   limit,
	}, nil
}

// ExportAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ExportAttendance(ctx context.Context, req attendance.ExportAttendanceRequest) ([]byte, error) {
	filter := resolveEmployeeFilter(req.ActorRole, req.ActorEmployeeID, req.EmployeeID)

	rows, err := s.PunchEventRepository.ListRaw(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", attendance.ErrPunchFetchFailed, err)
	}

	result := Reconcile(rows, filter)

	data, err := ExportCSV(result.Records)
	if err != nil {
		return nil, fmt.Errorf("failed to export attendance: %w", err)
	}
	return data, nil
}

func toRecordResponse(r attendance.DailyRecord) attendance.DailyRecordResponse {
	return attendance.DailyRecordResponse{
		EmpID:           r.EmployeeID,
		Date:            r.Date,
		FirstIn:         r.FirstIn,
		FirstInLocation: r.FirstInLocation,
		LastOut:         r.LastOut,
		LastOutLocation: r.LastOutLocation,
		WorkingHours:    r.WorkingHours,
		LastEvent:       string(r.LastEvent),
		Anomaly:         r.Anomaly,
	}
}

func toSkippedDetails(skipped []attendance.DataShapeError) []attendance.SkippedEventDetail {
	if len(skipped) == 0 {
		return nil
	}
	details := make([]attendance.SkippedEventDetail, 0, len(skipped))
	for _, e := range skipped {
		details = append(details, attendance.SkippedEventDetail{
			Index:      e.Index,
			EmployeeID: e.EmployeeID,
			Reason:     e.Reason,
		})
	}
	return details
}
