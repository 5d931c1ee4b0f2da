package postgresql

import (
	"context"

	"github.com/yashxjain/hrsmile-backend-go/internal/domain/policy"
	"github.com/yashxjain/hrsmile-backend-go/internal/pkg/database"
)

type policyRepositoryImpl struct {
	db *database.DB
}

func NewPolicyRepository(db *database.DB) policy.PolicyRepository {
	return &policyRepositoryImpl{db: db}
}

// Create implements policy.PolicyRepository.
func (r *policyRepositoryImpl) Create(ctx context.Context, p policy.Policy) (policy.Policy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO policies (id, name, description, url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, url, created_at
	`

	var created policy.Policy
	err := q.QueryRow(ctx, query, p.ID, p.Name, p.Description, p.URL).Scan(
		&created.ID,
		&created.Name,
		&created.Description,
		&created.URL,
		&created.CreatedAt,
	)
	if err != nil {
		return policy.Policy{}, err
	}

	return created, nil
}

// List implements policy.PolicyRepository.
func (r *policyRepositoryImpl) List(ctx context.Context) ([]policy.Policy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, url, created_at
		FROM policies
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var policies []policy.Policy
	for rows.Next() {
		var p policy.Policy
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.URL, &p.CreatedAt); err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return policies, nil
}

// Delete implements policy.PolicyRepository.
func (r *policyRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM policies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return policy.ErrPolicyNotFound
	}
	return nil
}
