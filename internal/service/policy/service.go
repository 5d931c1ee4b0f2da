package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yashxjain/hrsmile-backend-go/internal/domain/policy"
	"github.com/yashxjain/hrsmile-backend-go/internal/pkg/database"
)

type PolicyServiceImpl struct {
	db *database.DB
	policy.PolicyRepository
}

func NewPolicyService(db *database.DB, policyRepo policy.PolicyRepository) policy.PolicyService {
	return &PolicyServiceImpl{
		db:               db,
		PolicyRepository: policyRepo,
	}
}

// Create implements policy.PolicyService.
func (s *PolicyServiceImpl) Create(ctx context.Context, req policy.CreatePolicyRequest) (policy.PolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return policy.PolicyResponse{}, err
	}

	created, err := s.PolicyRepository.Create(ctx, policy.Policy{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		URL:         req.URL,
	})
	if err != nil {
		return policy.PolicyResponse{}, fmt.Errorf("failed to create policy: %w", err)
	}

	return toResponse(created), nil
}

// List implements policy.PolicyService.
func (s *PolicyServiceImpl) List(ctx context.Context) (policy.ListPolicyResponse, error) {
	policies, err := s.PolicyRepository.List(ctx)
	if err != nil {
		return policy.ListPolicyResponse{}, fmt.Errorf("failed to list policies: %w", err)
	}

	responses := make([]policy.PolicyResponse, 0, len(policies))
	for _, p := range policies {
		responses = append(responses, toResponse(p))
	}

	return policy.ListPolicyResponse{Policies: responses}, nil
}

// Delete implements policy.PolicyService.
func (s *PolicyServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.PolicyRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return policy.ErrPolicyNotFound
		}
		return fmt.Errorf("failed to delete policy: %w", err)
	}
	return nil
}

func toResponse(p policy.Policy) policy.PolicyResponse {
	return policy.PolicyResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		URL:         p.URL,
	}
}
