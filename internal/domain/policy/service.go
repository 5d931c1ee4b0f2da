package policy

import "context"

type PolicyService interface {
	Create(ctx context.Context, req CreatePolicyRequest) (PolicyResponse, error)
	List(ctx context.Context) (ListPolicyResponse, error)
	Delete(ctx context.Context, id string) error
}
