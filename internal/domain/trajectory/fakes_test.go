package trajectory

import (
	"context"
	"errors"
	"sync"
	"time"

	"beneficiary-trajectory/internal/domain/activities"
	"beneficiary-trajectory/internal/domain/actors"
	"beneficiary-trajectory/internal/domain/attendance"
	"beneficiary-trajectory/internal/domain/notes"
)

// -------------------------
// Fakes in-memory con conteo de llamadas
// -------------------------

var errFakeNotFound = errors.New("fake: not found")

var testLoc = time.FixedZone("UTC-3", -3*60*60)

type fakeAttendance struct {
	mu    sync.Mutex
	byBen map[string][]attendance.Record
	err   error
	calls int
}

func (f *fakeAttendance) ListByBeneficiary(ctx context.Context, id string) ([]attendance.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return append([]attendance.Record(nil), f.byBen[id]...), nil
}

type fakeNotes struct {
	mu          sync.Mutex
	byBen       map[string][]notes.Note
	listErr     error
	createErr   error
	listCalls   int
	createCalls int
}

func (f *fakeNotes) ListByBeneficiary(ctx context.Context, id string) ([]notes.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]notes.Note(nil), f.byBen[id]...), nil
}

func (f *fakeNotes) Create(ctx context.Context, n notes.Note) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	f.byBen[n.BeneficiaryID] = append(f.byBen[n.BeneficiaryID], n)
	return nil
}

func (f *fakeNotes) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls + f.createCalls
}

type fakeActivities struct {
	byID map[string]activities.Activity
	// hook corre antes de cada lookup (para simular latencia o barreras).
	hook func(ctx context.Context)
}

func (f *fakeActivities) GetByID(ctx context.Context, id string) (activities.Activity, error) {
	if f.hook != nil {
		f.hook(ctx)
	}
	a, ok := f.byID[id]
	if !ok {
		return activities.Activity{}, errFakeNotFound
	}
	return a, nil
}

type fakeSpaces struct {
	byID map[string]activities.Space
}

func (f *fakeSpaces) GetByID(ctx context.Context, id string) (activities.Space, error) {
	s, ok := f.byID[id]
	if !ok {
		return activities.Space{}, errFakeNotFound
	}
	return s, nil
}

type fakeActors struct {
	byID map[string]actors.Actor
}

func (f *fakeActors) GetByID(ctx context.Context, id string) (actors.Actor, error) {
	a, ok := f.byID[id]
	if !ok {
		return actors.Actor{}, errFakeNotFound
	}
	return a, nil
}

type fixture struct {
	attendance *fakeAttendance
	notes      *fakeNotes
	activities *fakeActivities
	spaces     *fakeSpaces
	actors     *fakeActors
}

func newFixture() *fixture {
	return &fixture{
		attendance: &fakeAttendance{byBen: map[string][]attendance.Record{}},
		notes:      &fakeNotes{byBen: map[string][]notes.Note{}},
		activities: &fakeActivities{byID: map[string]activities.Activity{}},
		spaces:     &fakeSpaces{byID: map[string]activities.Space{}},
		actors:     &fakeActors{byID: map[string]actors.Actor{}},
	}
}

func (f *fixture) sources() Sources {
	return Sources{
		Attendance: f.attendance,
		Notes:      f.notes,
		Activities: f.activities,
		Spaces:     f.spaces,
		Actors:     f.actors,
	}
}

func (f *fixture) assembler() *Assembler {
	return NewAssembler(f.sources(), Options{Normalizer: NewNormalizer(testLoc)})
}

// seedB1: una asistencia el 15/10 y una nota del 16/10.
func (f *fixture) seedB1() {
	f.spaces.byID["sp-a"] = activities.Space{ID: "sp-a", Name: "Center A"}
	f.activities.byID["act-1"] = activities.Activity{
		ID:            "act-1",
		Name:          "Workshop",
		Description:   "Weekly workshop",
		ScheduledDate: "2025-10-15",
		SpaceID:       "sp-a",
		Responsible:   "Laura Diaz",
	}
	f.actors.byID["u-perez"] = actors.Actor{ID: "u-perez", DisplayName: "Dr. Perez", Role: actors.RoleHealthProvider}

	f.attendance.byBen["B1"] = []attendance.Record{
		{ID: "at-1", ActivityID: "act-1", BeneficiaryID: "B1", Status: attendance.StatusPresent, Remark: "arrived early"},
	}
	f.notes.byBen["B1"] = []notes.Note{
		{ID: "n-1", AuthorID: "u-perez", BeneficiaryID: "B1", Title: "Follow-up", Body: "Stable", Date: "2025-10-16", Time: "10:30"},
	}
}
