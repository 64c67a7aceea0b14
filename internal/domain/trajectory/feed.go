package trajectory

import (
	"context"
	"sync"
)

// Snapshot es la copia que ve la superficie de presentación.
type Snapshot struct {
	BeneficiaryID string
	Entries       []Entry
	Loaded        bool

	// Err es el error de la última construcción; las Entries previas se conservan.
	Err error
}

// Feed mantiene la última trayectoria mostrada con semántica last-call-wins:
// el resultado de una construcción que fue superada por otra posterior se descarta.
type Feed struct {
	builder Builder

	mu   sync.Mutex
	gen  uint64
	snap Snapshot
}

func NewFeed(b Builder) *Feed {
	return &Feed{builder: b}
}

func (f *Feed) Build(ctx context.Context, beneficiaryID string) ([]Entry, error) {
	f.mu.Lock()
	f.gen++
	mine := f.gen
	f.mu.Unlock()

	entries, err := f.builder.Build(ctx, beneficiaryID)

	f.mu.Lock()
	defer f.mu.Unlock()

	if mine != f.gen {
		return nil, ErrSuperseded
	}
	if err != nil {
		f.snap.Err = err
		return nil, err
	}

	f.snap = Snapshot{
		BeneficiaryID: beneficiaryID,
		Entries:       entries,
		Loaded:        true,
	}
	return cloneEntries(entries), nil
}

func (f *Feed) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := f.snap
	s.Entries = cloneEntries(f.snap.Entries)
	return s
}

// cloneEntries copia también los detalles apuntados; el snapshot no comparte memoria con el caller.
func cloneEntries(in []Entry) []Entry {
	if in == nil {
		return nil
	}
	out := make([]Entry, len(in))
	for i, e := range in {
		if e.Attendance != nil {
			d := *e.Attendance
			e.Attendance = &d
		}
		if e.Note != nil {
			d := *e.Note
			e.Note = &d
		}
		out[i] = e
	}
	return out
}
