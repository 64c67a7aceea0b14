package trajectory

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"beneficiary-trajectory/internal/domain/actors"
	"beneficiary-trajectory/internal/domain/notes"
	"beneficiary-trajectory/internal/domain/trajectory/metrics"
	"beneficiary-trajectory/internal/platform/logger"

	"github.com/google/uuid"
)

const (
	minTitleLen = 3
	minBodyLen  = 1
)

// Builder recalcula la trayectoria completa. Lo implementan Assembler y Feed.
type Builder interface {
	Build(ctx context.Context, beneficiaryID string) ([]Entry, error)
}

// NoteCreator es la parte de notes.Repository que usa el gateway.
type NoteCreator interface {
	Create(ctx context.Context, n notes.Note) error
}

type NoteInput struct {
	BeneficiaryID string
	AuthorID      string
	AuthorRole    actors.Role
	Title         string
	Body          string
}

type AppendResult struct {
	Note     notes.Note
	Timeline []Entry
}

// Gateway recibe notas nuevas, las persiste y regenera la trayectoria completa.
// No hay parche incremental ni coordinación entre altas concurrentes.
type Gateway struct {
	notes   NoteCreator
	builder Builder
	norm    Normalizer

	log     logger.Logger
	metrics *metrics.Metrics

	now   func() time.Time
	newID func() string
}

func NewGateway(nc NoteCreator, b Builder, opts Options) *Gateway {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	return &Gateway{
		notes:   nc,
		builder: b,
		norm:    opts.Normalizer,
		log:     log,
		metrics: opts.Metrics,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

func (g *Gateway) AppendNote(ctx context.Context, in NoteInput) (AppendResult, error) {
	in.BeneficiaryID = strings.TrimSpace(in.BeneficiaryID)
	in.AuthorID = strings.TrimSpace(in.AuthorID)
	in.Title = strings.TrimSpace(in.Title)
	in.Body = strings.TrimSpace(in.Body)

	if err := validateNote(in); err != nil {
		g.metrics.IncNoteAppend("invalid")
		return AppendResult{}, err
	}
	if !in.AuthorRole.CanAuthorNotes() {
		g.metrics.IncNoteAppend("forbidden")
		return AppendResult{}, fmt.Errorf("%w: role %q cannot author notes", ErrForbidden, in.AuthorRole)
	}

	now := g.now().In(g.norm.Location())
	n := notes.Note{
		ID:            g.newID(),
		AuthorID:      in.AuthorID,
		BeneficiaryID: in.BeneficiaryID,
		Title:         in.Title,
		Body:          in.Body,
		Date:          now.Format(notes.DateLayout),
		Time:          now.Format(notes.TimeLayout),
		CreatedAt:     now,
	}

	if err := g.notes.Create(ctx, n); err != nil {
		g.metrics.IncNoteAppend("persist_error")
		g.log.Error("note persistence failed", map[string]any{
			"beneficiary_id": n.BeneficiaryID,
			"author_id":      n.AuthorID,
			"error":          err,
		})
		return AppendResult{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	// Siempre recarga completa: la nota nueva pasa por el mismo pipeline que el resto.
	timeline, err := g.builder.Build(ctx, n.BeneficiaryID)
	if err != nil {
		g.metrics.IncNoteAppend("rebuild_error")
		g.log.Warn("timeline rebuild after note failed", map[string]any{
			"beneficiary_id": n.BeneficiaryID,
			"note_id":        n.ID,
			"error":          err,
		})
		return AppendResult{Note: n}, fmt.Errorf("%w: %w", ErrRebuild, err)
	}

	g.metrics.IncNoteAppend("created")
	return AppendResult{Note: n, Timeline: timeline}, nil
}

func validateNote(in NoteInput) error {
	switch {
	case in.BeneficiaryID == "":
		return fmt.Errorf("%w: beneficiary id is required", ErrValidation)
	case in.AuthorID == "":
		return fmt.Errorf("%w: author id is required", ErrValidation)
	case utf8.RuneCountInString(in.Title) < minTitleLen:
		return fmt.Errorf("%w: title must have at least %d characters", ErrValidation, minTitleLen)
	case utf8.RuneCountInString(in.Body) < minBodyLen:
		return fmt.Errorf("%w: body is required", ErrValidation)
	}
	return nil
}
