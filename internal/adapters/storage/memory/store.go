package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"beneficiary-trajectory/internal/domain/activities"
	"beneficiary-trajectory/internal/domain/actors"
	"beneficiary-trajectory/internal/domain/attendance"
	"beneficiary-trajectory/internal/domain/beneficiaries"
	"beneficiary-trajectory/internal/domain/notes"
)

// Store agrupa los repos in-memory del modo dev.
type Store struct {
	Beneficiaries *BeneficiaryRepo
	Attendance    *AttendanceRepo
	Notes         *NoteRepo
	Activities    *ActivityRepo
	Spaces        *SpaceRepo
	Actors        *ActorRepo
}

func NewStore() *Store {
	return &Store{
		Beneficiaries: NewBeneficiaryRepo(),
		Attendance:    NewAttendanceRepo(),
		Notes:         NewNoteRepo(),
		Activities:    NewActivityRepo(),
		Spaces:        NewSpaceRepo(),
		Actors:        NewActorRepo(),
	}
}

// Seed es el formato de SEED_FILE.
type Seed struct {
	Beneficiaries []SeedBeneficiary  `json:"beneficiaries"`
	Spaces        []activities.Space `json:"spaces"`
	Activities    []SeedActivity     `json:"activities"`
	Actors        []SeedActor        `json:"actors"`
	Attendance    []SeedAttendance   `json:"attendance"`
	Notes         []SeedNote         `json:"notes"`
}

type SeedBeneficiary struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	DocumentNumber string `json:"document_number"`
	BirthDate      string `json:"birth_date"` // YYYY-MM-DD, opcional
	InstitutionID  string `json:"institution_id"`
}

type SeedActivity struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	ScheduledDate string `json:"scheduled_date"`
	SpaceID       string `json:"space_id"`
	Responsible   string `json:"responsible"`
}

type SeedActor struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

type SeedAttendance struct {
	ID            string `json:"id"`
	ActivityID    string `json:"activity_id"`
	BeneficiaryID string `json:"beneficiary_id"`
	Status        string `json:"status"`
	Remark        string `json:"remark"`
}

type SeedNote struct {
	ID            string `json:"id"`
	AuthorID      string `json:"author_id"`
	BeneficiaryID string `json:"beneficiary_id"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}

func LoadSeedFile(path string) (Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed: %w", err)
	}
	var s Seed
	if err := json.Unmarshal(raw, &s); err != nil {
		return Seed{}, fmt.Errorf("decode seed %s: %w", path, err)
	}
	return s, nil
}

// Apply carga el seed. Los beneficiarios pasan por beneficiaries.Service para
// respetar sus validaciones; el resto va directo a los repos.
func (st *Store) Apply(ctx context.Context, s Seed) error {
	benSvc := beneficiaries.NewService(st.Beneficiaries)
	for _, b := range s.Beneficiaries {
		in := beneficiaries.CreateInput{
			ID:             b.ID,
			FullName:       b.FullName,
			DocumentNumber: b.DocumentNumber,
			InstitutionID:  b.InstitutionID,
		}
		if b.BirthDate != "" {
			d, err := time.Parse(notes.DateLayout, b.BirthDate)
			if err != nil {
				return fmt.Errorf("seed beneficiary %s: birth_date: %w", b.ID, err)
			}
			in.BirthDate = &d
		}
		if _, err := benSvc.Create(ctx, in); err != nil {
			return fmt.Errorf("seed beneficiary %s: %w", b.ID, err)
		}
	}

	for _, sp := range s.Spaces {
		st.Spaces.Put(sp)
	}
	for _, a := range s.Activities {
		st.Activities.Put(activities.Activity(a))
	}
	for _, a := range s.Actors {
		st.Actors.Put(actors.Actor{ID: a.ID, DisplayName: a.DisplayName, Role: actors.Role(a.Role)})
	}

	for _, a := range s.Attendance {
		rec := attendance.Record{
			ID:            a.ID,
			ActivityID:    a.ActivityID,
			BeneficiaryID: a.BeneficiaryID,
			Status:        attendance.Status(a.Status),
			Remark:        a.Remark,
		}
		if err := st.Attendance.Add(ctx, rec); err != nil {
			return fmt.Errorf("seed attendance %s: %w", a.ID, err)
		}
	}

	for _, n := range s.Notes {
		note := notes.Note{
			ID:            n.ID,
			AuthorID:      n.AuthorID,
			BeneficiaryID: n.BeneficiaryID,
			Title:         n.Title,
			Body:          n.Body,
			Date:          n.Date,
			Time:          n.Time,
		}
		if err := st.Notes.Create(ctx, note); err != nil {
			return fmt.Errorf("seed note %s: %w", n.ID, err)
		}
	}
	return nil
}
