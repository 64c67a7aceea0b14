package postgres

import (
	"context"
	"database/sql"
	"strings"

	"beneficiary-trajectory/internal/domain/notes"
)

type NotesRepo struct {
	db *sql.DB
}

func NewNotesRepo(db *sql.DB) *NotesRepo {
	return &NotesRepo{db: db}
}

func (r *NotesRepo) Create(ctx context.Context, n notes.Note) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO observation_notes (
			id, author_id, beneficiary_id,
			title, body,
			note_date, note_time,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		n.ID,
		n.AuthorID,
		n.BeneficiaryID,
		n.Title,
		n.Body,
		n.Date,
		n.Time,
		n.CreatedAt,
	)
	return err
}

func (r *NotesRepo) ListByBeneficiary(ctx context.Context, beneficiaryID string) ([]notes.Note, error) {
	beneficiaryID = strings.TrimSpace(beneficiaryID)
	if beneficiaryID == "" {
		return []notes.Note{}, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, author_id, beneficiary_id, title, body, note_date, note_time, created_at
		FROM observation_notes
		WHERE beneficiary_id = $1
		ORDER BY created_at ASC, id ASC
	`, beneficiaryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notes.Note, 0)
	for rows.Next() {
		var n notes.Note
		if err := rows.Scan(
			&n.ID,
			&n.AuthorID,
			&n.BeneficiaryID,
			&n.Title,
			&n.Body,
			&n.Date,
			&n.Time,
			&n.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, n)
	}

	return out, rows.Err()
}
