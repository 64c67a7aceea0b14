package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"beneficiary-trajectory/internal/domain/notes"
)

// NoteRepo es append-only: las notas no se editan ni se borran.
type NoteRepo struct {
	mu    sync.RWMutex
	ids   map[string]struct{}
	notes []notes.Note
}

func NewNoteRepo() *NoteRepo {
	return &NoteRepo{
		ids: make(map[string]struct{}),
	}
}

func (r *NoteRepo) Create(ctx context.Context, n notes.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(n.ID) == "" {
		return errors.New("note id required")
	}
	if _, exists := r.ids[n.ID]; exists {
		return errors.New("note already exists")
	}
	r.ids[n.ID] = struct{}{}
	r.notes = append(r.notes, n)
	return nil
}

func (r *NoteRepo) ListByBeneficiary(ctx context.Context, beneficiaryID string) ([]notes.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]notes.Note, 0)
	for _, n := range r.notes {
		if n.BeneficiaryID == beneficiaryID {
			out = append(out, n)
		}
	}
	return out, nil
}
