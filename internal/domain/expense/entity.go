package expense

import "time"

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

type Expense struct {
	ID          string
	EmployeeID  string
	ExpenseType string
	Amount      float64
	ExpenseDate time.Time
	Status      Status
	ActedBy     *string
	ActedAt     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
