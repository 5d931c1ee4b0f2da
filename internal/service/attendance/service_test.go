package attendance

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yashxjain/hrsmile-backend-go/internal/domain/attendance"
	"github.com/yashxjain/hrsmile-backend-go/internal/domain/employee"
	"github.com/yashxjain/hrsmile-backend-go/internal/domain/user"
)

// ===== Reconcile (pure engine) =====

func TestReconcile_SingleFullDay(t *testing.T) {
	result := Reconcile([]attendance.RawPunchRow{
		rawRow("E1", "2024-01-01T09:00", "In"),
		rawRow("E1", "2024-01-01T18:00", "Out"),
	}, "")

	require.Equal(t, 1, result.Records.Total())
	r := result.Records.All()[0]
	assert.Equal(t, "E1", r.EmployeeID)
	assert.Equal(t, "01/01/2024", r.Date)
	assert.Equal(t, "9:00 AM", r.FirstIn)
	assert.Equal(t, "6:00 PM", r.LastOut)
	assert.Equal(t, "9 hrs, 0 mins", r.WorkingHours)
	assert.Empty(t, result.Skipped)
}

func TestReconcile_TwoEmployeesSameDate(t *testing.T) {
	result := Reconcile([]attendance.RawPunchRow{
		rawRow("E2", "2024-01-01T09:30", "In"),
		rawRow("E1", "2024-01-01T09:00", "In"),
	}, "")

	records := result.Records.All()
	require.Len(t, records, 2)
	assert.Equal(t, "E1", records[0].EmployeeID)
	assert.Equal(t, "E2", records[1].EmployeeID)
}

func TestReconcile_EmployeeFilter(t *testing.T) {
	rows := []attendance.RawPunchRow{
		rawRow("E1", "2024-01-01T09:00", "In"),
		rawRow("E2", "2024-01-01T09:00", "In"),
	}

	all := Reconcile(rows, "")
	assert.Equal(t, 2, all.Records.Total())

	only := Reconcile(rows, "E2")
	require.Equal(t, 1, only.Records.Total())
	assert.Equal(t, "E2", only.Records.All()[0].EmployeeID)
}

func TestReconcile_PartialBatchWithSkips(t *testing.T) {
	result := Reconcile([]attendance.RawPunchRow{
		rawRow("E1", "2024-01-01T09:00", "In: Delhi Office"),
		rawRow("", "2024-01-01T10:00", "In"),
		rawRow("E1", "banana", "Out"),
		rawRow("E1", "2024-01-01T18:00", "Out: Delhi Office"),
	}, "")

	require.Equal(t, 1, result.Records.Total())
	r := result.Records.All()[0]
	assert.Equal(t, "9:00 AM", r.FirstIn)
	assert.Equal(t, "6:00 PM", r.LastOut)
	assert.Len(t, result.Skipped, 2)
}

func TestReconcile_AnomalyDay(t *testing.T) {
	result := Reconcile([]attendance.RawPunchRow{
		rawRow("E1", "2024-01-01T18:00", "In"),
		rawRow("E1", "2024-01-01T09:00", "Out"),
	}, "")

	require.Equal(t, 1, result.Records.Total())
	r := result.Records.All()[0]
	assert.True(t, r.Anomaly)
	assert.Equal(t, attendance.NotAvailable, r.WorkingHours)
	assert.NotContains(t, r.WorkingHours, "-")
}

func TestReconcile_Deterministic(t *testing.T) {
	rows := []attendance.RawPunchRow{
		rawRow("E3", "2024-01-02T09:00", "In"),
		rawRow("E1", "2024-01-01T09:00", "In"),
		rawRow("E1", "2024-01-01T18:00", "Out"),
		rawRow("E2", "2024-01-02T08:00", "Out"),
	}

	first := Reconcile(rows, "")
	for i := 0; i < 10; i++ {
		again := Reconcile(rows, "")
		assert.Equal(t, first.Records.All(), again.Records.All())
	}
}

func TestResolveEmployeeFilter(t *testing.T) {
	// HR sees whoever they ask for, including everyone.
	assert.Equal(t, "", resolveEmployeeFilter(user.RoleHR, "E9", ""))
	assert.Equal(t, "E1", resolveEmployeeFilter(user.RoleHR, "E9", "E1"))

	// Everyone else is pinned to themselves.
	assert.Equal(t, "E9", resolveEmployeeFilter(user.RoleEmployee, "E9", ""))
	assert.Equal(t, "E9", resolveEmployeeFilter(user.RoleEmployee, "E9", "E1"))
}

// ===== Service over fake repositories =====

type fakePunchRepo struct {
	rows    []attendance.RawPunchRow
	created []attendance.PunchEvent
	listErr error
}

func (f *fakePunchRepo) Create(_ context.Context, e attendance.PunchEvent) (attendance.PunchEvent, error) {
	f.created = append(f.created, e)
	return e, nil
}

func (f *fakePunchRepo) ListRaw(_ context.Context, employeeID string) ([]attendance.RawPunchRow, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if employeeID == "" {
		return f.rows, nil
	}
	var out []attendance.RawPunchRow
	for _, r := range f.rows {
		if r.EmpID == employeeID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) GetByEmpID(_ context.Context, empID string) (employee.Employee, error) {
	e, ok := f.employees[empID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.ListFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) SetActive(_ context.Context, _ string, _ bool) error {
	return nil
}

func newTestService(punchRepo *fakePunchRepo, employees ...employee.Employee) attendance.AttendanceService {
	empRepo := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, e := range employees {
		empRepo.employees[e.EmpID] = e
	}
	return NewAttendanceService(nil, punchRepo, empRepo)
}

func TestListAttendance_RoleForcedFilter(t *testing.T) {
	repo := &fakePunchRepo{rows: []attendance.RawPunchRow{
		rawRow("E1", "2024-01-01T09:00", "In"),
		rawRow("E2", "2024-01-01T09:00", "In"),
	}}
	svc := newTestService(repo)

	// Non-HR asking for someone else still only sees their own records.
	resp, err := svc.ListAttendance(context.Background(), attendance.ListAttendanceRequest{
		ActorEmployeeID: "E1",
		ActorRole:       user.RoleEmployee,
		EmployeeID:      "E2",
	})
	require.NoError(t, err)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "E1", resp.Records[0].EmpID)

	// HR with no filter sees everyone.
	resp, err = svc.ListAttendance(context.Background(), attendance.ListAttendanceRequest{
		ActorEmployeeID: "E9",
		ActorRole:       user.RoleHR,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Records, 2)
}

func TestListAttendance_Pagination(t *testing.T) {
	repo := &fakePunchRepo{rows: []attendance.RawPunchRow{
		rawRow("E1", "2024-01-01T09:00", "In"),
		rawRow("E1", "2024-01-02T09:00", "In"),
		rawRow("E1", "2024-01-03T09:00", "In"),
	}}
	svc := newTestService(repo)

	resp, err := svc.ListAttendance(context.Background(), attendance.ListAttendanceRequest{
		ActorEmployeeID: "E1",
		ActorRole:       user.RoleEmployee,
		Page:            2,
		Limit:           2,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "01/01/2024", resp.Records[0].Date)
}

func TestListAttendance_FetchFailure(t *testing.T) {
	repo := &fakePunchRepo{listErr: errors.New("connection refused")}
	svc := newTestService(repo)

	_, err := svc.ListAttendance(context.Background(), attendance.ListAttendanceRequest{
		ActorEmployeeID: "E1",
		ActorRole:       user.RoleEmployee,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, attendance.ErrPunchFetchFailed)
}

func TestExportAttendance(t *testing.T) {
	repo := &fakePunchRepo{rows: []attendance.RawPunchRow{
		rawRow("E1", "2024-01-01T09:00", "In"),
		rawRow("E1", "2024-01-01T18:00", "Out"),
	}}
	svc := newTestService(repo)

	data, err := svc.ExportAttendance(context.Background(), attendance.ExportAttendanceRequest{
		ActorEmployeeID: "E1",
		ActorRole:       user.RoleEmployee,
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Emp ID,Date,In,In Location,Out,Out Location,Working Hours,Last Event", lines[0])
	assert.Contains(t, lines[1], "E1,01/01/2024,9:00 AM")
}

func TestPunch_StoresEventVerbatim(t *testing.T) {
	repo := &fakePunchRepo{}
	svc := newTestService(repo, employee.Employee{EmpID: "E1", IsActive: true})

	resp, err := svc.Punch(context.Background(), attendance.PunchRequest{
		EmployeeID:     "E1",
		MobileDateTime: "2024-01-01T09:00",
		Event:          "In: Head Office",
		GeoLocation:    strPtr("28.6139,77.2090"),
	})
	require.NoError(t, err)

	assert.Equal(t, attendance.KindIn, resp.Kind)
	assert.Equal(t, "2024-01-01T09:00", resp.Timestamp)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "In: Head Office", repo.created[0].RawLabel)
	assert.Equal(t, "2024-01-01T09:00", repo.created[0].MobileDateTime)
}

func TestPunch_Geofence(t *testing.T) {
	office := employee.Employee{
		EmpID:           "E1",
		IsActive:        true,
		IsGeofence:      true,
		OfficeLatLong:   "28.6139,77.2090",
		GeofenceRadiusM: 200,
	}

	svc := newTestService(&fakePunchRepo{}, office)

	// Inside the fence: right at the office.
	_, err := svc.Punch(context.Background(), attendance.PunchRequest{
		EmployeeID:     "E1",
		MobileDateTime: "2024-01-01T09:00",
		Event:          "In",
		GeoLocation:    strPtr("28.6139,77.2090"),
	})
	assert.NoError(t, err)

	// Far outside the fence.
	_, err = svc.Punch(context.Background(), attendance.PunchRequest{
		EmployeeID:     "E1",
		MobileDateTime: "2024-01-01T09:00",
		Event:          "In",
		GeoLocation:    strPtr("19.0760,72.8777"),
	})
	assert.ErrorIs(t, err, attendance.ErrOutsideAllowedRadius)

	// Geofenced office demands a location.
	_, err = svc.Punch(context.Background(), attendance.PunchRequest{
		EmployeeID:     "E1",
		MobileDateTime: "2024-01-01T09:00",
		Event:          "In",
	})
	assert.ErrorIs(t, err, attendance.ErrGeoLocationRequired)
}

func TestPunch_ValidationFailures(t *testing.T) {
	svc := newTestService(&fakePunchRepo{}, employee.Employee{EmpID: "E1"})

	_, err := svc.Punch(context.Background(), attendance.PunchRequest{
		EmployeeID:     "E1",
		MobileDateTime: "not a timestamp",
		Event:          "In",
	})
	require.Error(t, err)

	_, err = svc.Punch(context.Background(), attendance.PunchRequest{
		EmployeeID:     "E7",
		MobileDateTime: "2024-01-01T09:00",
		Event:          "In",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
