package beneficiaries

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Beneficiary
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Beneficiary{}}
}

func (r *testRepo) Create(ctx context.Context, b Beneficiary) error {
	if _, ok := r.byID[b.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[b.ID] = b
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Beneficiary, error) {
	b, ok := r.byID[id]
	if !ok {
		return Beneficiary{}, errRepoNotFound
	}
	return b, nil
}

func TestService_Create_TrimsAndStamps(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	b, err := svc.Create(context.Background(), CreateInput{
		FullName:       "  Ana Gomez ",
		DocumentNumber: " 30111222 ",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "Ana Gomez", b.FullName)
	assert.Equal(t, "30111222", b.DocumentNumber)
	assert.Equal(t, now, b.CreatedAt)

	got, err := svc.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestService_Create_RejectsBlankName(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), CreateInput{FullName: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetByID_BlankID(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.GetByID(context.Background(), " ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Create_KeepsGivenID(t *testing.T) {
	svc := NewService(newTestRepo())

	b, err := svc.Create(context.Background(), CreateInput{ID: " B1 ", FullName: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, "B1", b.ID)

	_, err = svc.Create(context.Background(), CreateInput{ID: "B1", FullName: "Otra"})
	assert.Error(t, err)
}
