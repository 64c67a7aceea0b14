package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"beneficiary-trajectory/internal/domain/attendance"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ApplySeedFile(t *testing.T) {
	ctx := context.Background()

	seed, err := LoadSeedFile(filepath.Join("testdata", "seed.json"))
	require.NoError(t, err)

	st := NewStore()
	require.NoError(t, st.Apply(ctx, seed))

	b, err := st.Beneficiaries.GetByID(ctx, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Ana Gomez", b.FullName)
	require.NotNil(t, b.BirthDate)
	assert.Equal(t, 2001, b.BirthDate.Year())
	assert.False(t, b.CreatedAt.IsZero())

	recs, err := st.Attendance.ListByBeneficiary(ctx, "B1")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, attendance.StatusPresent, recs[0].Status)

	ns, err := st.Notes.ListByBeneficiary(ctx, "B1")
	require.NoError(t, err)
	require.Len(t, ns, 1)
	assert.Equal(t, "2025-10-16", ns[0].Date)

	act, err := st.Activities.GetByID(ctx, "act-1")
	require.NoError(t, err)
	assert.Equal(t, "sp-a", act.SpaceID)

	sp, err := st.Spaces.GetByID(ctx, "sp-a")
	require.NoError(t, err)
	assert.Equal(t, "Center A", sp.Name)

	who, err := st.Actors.GetByID(ctx, "u-perez")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Perez", who.DisplayName)
}

func TestStore_ApplyRejectsInvalidSeed(t *testing.T) {
	ctx := context.Background()

	err := NewStore().Apply(ctx, Seed{Beneficiaries: []SeedBeneficiary{{ID: "B1"}}})
	assert.Error(t, err, "full_name is required")

	err = NewStore().Apply(ctx, Seed{Beneficiaries: []SeedBeneficiary{{ID: "B1", FullName: "Ana", BirthDate: "04/03/2001"}}})
	assert.Error(t, err)

	err = NewStore().Apply(ctx, Seed{Attendance: []SeedAttendance{{ID: "a"}, {ID: "a"}}})
	assert.Error(t, err)
}

func TestLoadSeedFile_Errors(t *testing.T) {
	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
	_, err = LoadSeedFile(bad)
	assert.Error(t, err)
}
