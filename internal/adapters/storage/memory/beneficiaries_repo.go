package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"beneficiary-trajectory/internal/domain/beneficiaries"
)

var (
	ErrNotFound = errors.New("not found")

	errBeneficiaryNotFound = fmt.Errorf("%w: %w", beneficiaries.ErrNotFound, ErrNotFound)
)

type BeneficiaryRepo struct {
	mu   sync.RWMutex
	byID map[string]beneficiaries.Beneficiary
}

func NewBeneficiaryRepo() *BeneficiaryRepo {
	return &BeneficiaryRepo{
		byID: make(map[string]beneficiaries.Beneficiary),
	}
}

func (r *BeneficiaryRepo) Create(ctx context.Context, b beneficiaries.Beneficiary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(b.ID) == "" {
		return errors.New("beneficiary id required")
	}
	if _, exists := r.byID[b.ID]; exists {
		return errors.New("beneficiary already exists")
	}
	r.byID[b.ID] = b
	return nil
}

func (r *BeneficiaryRepo) GetByID(ctx context.Context, id string) (beneficiaries.Beneficiary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return beneficiaries.Beneficiary{}, errBeneficiaryNotFound
	}
	return b, nil
}
