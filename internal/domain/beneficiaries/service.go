package beneficiaries

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound lo devuelven los repositorios cuando el beneficiario no existe.
	// Cualquier otro error de GetByID es una falla del storage.
	ErrNotFound = errors.New("beneficiary not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	// ID opcional: vacío => se genera uno. Los seeds lo fijan para poder referenciarlo.
	ID string

	FullName       string
	DocumentNumber string
	BirthDate      *time.Time
	InstitutionID  string
}

// Create da de alta un beneficiario. Lo usan los seeds del modo dev (memory.Store.Apply)
// y los tests; el alta real vive en el flujo de registro de instituciones.
func (s *Service) Create(ctx context.Context, in CreateInput) (Beneficiary, error) {
	if strings.TrimSpace(in.FullName) == "" {
		return Beneficiary{}, ErrInvalidInput
	}

	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = uuid.NewString()
	}

	b := Beneficiary{
		ID:             id,
		FullName:       strings.TrimSpace(in.FullName),
		DocumentNumber: strings.TrimSpace(in.DocumentNumber),
		BirthDate:      in.BirthDate,
		InstitutionID:  strings.TrimSpace(in.InstitutionID),
		CreatedAt:      s.now(),
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return Beneficiary{}, err
	}
	return b, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Beneficiary, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Beneficiary{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}
