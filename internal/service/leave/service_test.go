package leave

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yashxjain/hrsmile-backend-go/internal/domain/employee"
	"github.com/yashxjain/hrsmile-backend-go/internal/domain/leave"
	"github.com/yashxjain/hrsmile-backend-go/internal/pkg/validator"
)

type fakeLeaveRepo struct {
	byID    map[string]leave.LeaveRequest
	created []leave.LeaveRequest
	updated []leave.LeaveRequest
}

func (f *fakeLeaveRepo) Create(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.created = append(f.created, req)
	return req, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	l, ok := f.byID[id]
	if !ok {
		return leave.LeaveRequest{}, pgx.ErrNoRows
	}
	return l, nil
}

func (f *fakeLeaveRepo) List(_ context.Context, filter leave.ListLeaveFilter) ([]leave.LeaveRequest, int64, error) {
	var out []leave.LeaveRequest
	for _, l := range f.byID {
		if filter.EmployeeID != "" && l.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && string(l.Status) != filter.Status {
			continue
		}
		out = append(out, l)
	}
	return out, int64(len(out)), nil
}

func (f *fakeLeaveRepo) UpdateStatus(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.updated = append(f.updated, req)
	f.byID[req.ID] = req
	return req, nil
}

type fakeEmployeeRepo struct {
	byEmpID map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmpID(_ context.Context, empID string) (employee.Employee, error) {
	emp, ok := f.byEmpID[empID]
	if !ok {
		return employee.Employee{}, pgx.ErrNoRows
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, pgx.ErrNoRows
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.ListFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) SetActive(_ context.Context, _ string, _ bool) error {
	return nil
}

func newTestLeaveService(leaveRepo *fakeLeaveRepo, empRepo *fakeEmployeeRepo) leave.LeaveService {
	return NewLeaveService(nil, leaveRepo, empRepo)
}

func TestApply_CreatesPendingRequest(t *testing.T) {
	leaveRepo := &fakeLeaveRepo{byID: map[string]leave.LeaveRequest{}}
	empRepo := &fakeEmployeeRepo{byEmpID: map[string]employee.Employee{
		"EMP001": {EmpID: "EMP001", Name: "Asha"},
	}}
	svc := newTestLeaveService(leaveRepo, empRepo)

	resp, err := svc.Apply(context.Background(), leave.ApplyLeaveRequest{
		EmployeeID: "EMP001",
		StartDate:  "2025-03-10",
		EndDate:    "2025-03-12",
		Reason:     "family function",
	})
	require.NoError(t, err)

	require.Len(t, leaveRepo.created, 1)
	assert.Equal(t, leave.StatusPending, leaveRepo.created[0].Status)
	assert.NotEmpty(t, leaveRepo.created[0].ID)

	assert.Equal(t, "EMP001", resp.EmployeeID)
	assert.Equal(t, "2025-03-10", resp.StartDate)
	assert.Equal(t, "2025-03-12", resp.EndDate)
	assert.Equal(t, 3, resp.Days)
}

func TestApply_UnknownEmployee(t *testing.T) {
	leaveRepo := &fakeLeaveRepo{byID: map[string]leave.LeaveRequest{}}
	empRepo := &fakeEmployeeRepo{byEmpID: map[string]employee.Employee{}}
	svc := newTestLeaveService(leaveRepo, empRepo)

	_, err := svc.Apply(context.Background(), leave.ApplyLeaveRequest{
		EmployeeID: "GHOST",
		StartDate:  "2025-03-10",
		EndDate:    "2025-03-12",
		Reason:     "family function",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Empty(t, leaveRepo.created)
}

func TestApply_EndBeforeStartFailsValidation(t *testing.T) {
	leaveRepo := &fakeLeaveRepo{byID: map[string]leave.LeaveRequest{}}
	empRepo := &fakeEmployeeRepo{byEmpID: map[string]employee.Employee{
		"EMP001": {EmpID: "EMP001"},
	}}
	svc := newTestLeaveService(leaveRepo, empRepo)

	_, err := svc.Apply(context.Background(), leave.ApplyLeaveRequest{
		EmployeeID: "EMP001",
		StartDate:  "2025-03-12",
		EndDate:    "2025-03-10",
		Reason:     "family function",
	})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "end_date")
	assert.Empty(t, leaveRepo.created)
}

func TestApprove_SetsStatusAndActor(t *testing.T) {
	pending := leave.LeaveRequest{
		ID:         "req-1",
		EmployeeID: "EMP001",
		StartDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		Status:     leave.StatusPending,
	}
	leaveRepo := &fakeLeaveRepo{byID: map[string]leave.LeaveRequest{"req-1": pending}}
	svc := newTestLeaveService(leaveRepo, &fakeEmployeeRepo{})

	resp, err := svc.Approve(context.Background(), leave.ActOnLeaveRequest{ID: "req-1", ActedBy: "HR001"})
	require.NoError(t, err)

	assert.Equal(t, leave.StatusApproved, resp.Status)
	require.NotNil(t, resp.ActedBy)
	assert.Equal(t, "HR001", *resp.ActedBy)
	assert.NotNil(t, resp.ActedAt)
}

func TestApprove_AlreadyProcessed(t *testing.T) {
	approved := leave.LeaveRequest{
		ID:        "req-1",
		Status:    leave.StatusApproved,
		StartDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	leaveRepo := &fakeLeaveRepo{byID: map[string]leave.LeaveRequest{"req-1": approved}}
	svc := newTestLeaveService(leaveRepo, &fakeEmployeeRepo{})

	_, err := svc.Reject(context.Background(), leave.ActOnLeaveRequest{ID: "req-1", ActedBy: "HR001"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
	assert.Empty(t, leaveRepo.updated)
}

func TestAct_UnknownRequest(t *testing.T) {
	leaveRepo := &fakeLeaveRepo{byID: map[string]leave.LeaveRequest{}}
	svc := newTestLeaveService(leaveRepo, &fakeEmployeeRepo{})

	_, err := svc.Approve(context.Background(), leave.ActOnLeaveRequest{ID: "missing", ActedBy: "HR001"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}
