package beneficiaries

import "context"

type Repository interface {
	Create(ctx context.Context, b Beneficiary) error
	GetByID(ctx context.Context, id string) (Beneficiary, error)
}
