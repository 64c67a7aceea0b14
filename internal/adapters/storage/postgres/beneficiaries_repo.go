package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"beneficiary-trajectory/internal/domain/beneficiaries"
)

type BeneficiariesRepo struct {
	db *sql.DB
}

func NewBeneficiariesRepo(db *sql.DB) *BeneficiariesRepo {
	return &BeneficiariesRepo{db: db}
}

func (r *BeneficiariesRepo) Create(ctx context.Context, b beneficiaries.Beneficiary) error {
	var birth sql.NullTime
	if b.BirthDate != nil {
		birth = sql.NullTime{Time: *b.BirthDate, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO beneficiaries (
			id, full_name, document_number, birth_date, institution_id, created_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		b.ID,
		b.FullName,
		b.DocumentNumber,
		birth,
		b.InstitutionID,
		b.CreatedAt,
	)
	return err
}

// errBeneficiaryNotFound matchea tanto ErrNotFound del paquete como el del dominio.
var errBeneficiaryNotFound = fmt.Errorf("%w: %w", beneficiaries.ErrNotFound, ErrNotFound)

func (r *BeneficiariesRepo) GetByID(ctx context.Context, id string) (beneficiaries.Beneficiary, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return beneficiaries.Beneficiary{}, errBeneficiaryNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, full_name, document_number, birth_date, institution_id, created_at
		FROM beneficiaries
		WHERE id = $1
	`, id)

	var b beneficiaries.Beneficiary
	var birth sql.NullTime
	if err := row.Scan(
		&b.ID,
		&b.FullName,
		&b.DocumentNumber,
		&birth,
		&b.InstitutionID,
		&b.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return beneficiaries.Beneficiary{}, errBeneficiaryNotFound
		}
		return beneficiaries.Beneficiary{}, err
	}
	if birth.Valid {
		t := birth.Time
		b.BirthDate = &t
	}

	return b, nil
}
