package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"beneficiary-trajectory/internal/domain/attendance"
)

// AttendanceRepo guarda asistencias en orden de alta; ese orden es el de obtención.
type AttendanceRepo struct {
	mu      sync.RWMutex
	records []attendance.Record
}

func NewAttendanceRepo() *AttendanceRepo {
	return &AttendanceRepo{}
}

// Add lo usa el flujo de actividades (fuera de este servicio) y los seeds de dev/tests.
func (r *AttendanceRepo) Add(ctx context.Context, rec attendance.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("attendance id required")
	}
	for _, existing := range r.records {
		if existing.ID == rec.ID {
			return errors.New("attendance already exists")
		}
	}
	r.records = append(r.records, rec)
	return nil
}

func (r *AttendanceRepo) ListByBeneficiary(ctx context.Context, beneficiaryID string) ([]attendance.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]attendance.Record, 0)
	for _, rec := range r.records {
		if rec.BeneficiaryID == beneficiaryID {
			out = append(out, rec)
		}
	}
	return out, nil
}
