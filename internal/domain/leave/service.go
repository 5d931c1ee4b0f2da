package leave

import "context"

// LeaveService defines business logic for leave requests.
type LeaveService interface {
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveResponse, error)
	List(ctx context.Context, filter ListLeaveFilter) (ListLeaveResponse, error)
	Approve(ctx context.Context, req ActOnLeaveRequest) (LeaveResponse, error)
	Reject(ctx context.Context, req ActOnLeaveRequest) (LeaveResponse, error)
}
