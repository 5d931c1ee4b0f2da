package expense

import "context"

// ExpenseService defines business logic for expense claims.
type ExpenseService interface {
	Submit(ctx context.Context, req SubmitExpenseRequest) (ExpenseResponse, error)
	List(ctx context.Context, filter ListExpenseFilter) (ListExpenseResponse, error)
	Approve(ctx context.Context, req ActOnExpenseRequest) (ExpenseResponse, error)
	Reject(ctx context.Context, req ActOnExpenseRequest) (ExpenseResponse, error)
}
