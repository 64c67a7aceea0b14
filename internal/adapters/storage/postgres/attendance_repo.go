package postgres

import (
	"context"
	"database/sql"
	"strings"

	"beneficiary-trajectory/internal/domain/attendance"
)

type AttendanceRepo struct {
	db *sql.DB
}

func NewAttendanceRepo(db *sql.DB) *AttendanceRepo {
	return &AttendanceRepo{db: db}
}

func (r *AttendanceRepo) ListByBeneficiary(ctx context.Context, beneficiaryID string) ([]attendance.Record, error) {
	beneficiaryID = strings.TrimSpace(beneficiaryID)
	if beneficiaryID == "" {
		return []attendance.Record{}, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, activity_id, beneficiary_id, status, remark
		FROM attendance
		WHERE beneficiary_id = $1
		ORDER BY created_at ASC, id ASC
	`, beneficiaryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]attendance.Record, 0)
	for rows.Next() {
		var rec attendance.Record
		var status string
		if err := rows.Scan(
			&rec.ID,
			&rec.ActivityID,
			&rec.BeneficiaryID,
			&status,
			&rec.Remark,
		); err != nil {
			return nil, err
		}
		rec.Status = attendance.Status(status)
		out = append(out, rec)
	}

	return out, rows.Err()
}
