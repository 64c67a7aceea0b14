package notes

import "context"

type Repository interface {
	Create(ctx context.Context, n Note) error
	ListByBeneficiary(ctx context.Context, beneficiaryID string) ([]Note, error)
}
