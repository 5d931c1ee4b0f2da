package policy

import "context"

type PolicyRepository interface {
	Create(ctx context.Context, p Policy) (Policy, error)
	List(ctx context.Context) ([]Policy, error)
	Delete(ctx context.Context, id string) error
}
