package attendance

import "context"

type Repository interface {
	ListByBeneficiary(ctx context.Context, beneficiaryID string) ([]Record, error)
}
