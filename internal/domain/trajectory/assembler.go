package trajectory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"beneficiary-trajectory/internal/domain/activities"
	"beneficiary-trajectory/internal/domain/actors"
	"beneficiary-trajectory/internal/domain/attendance"
	"beneficiary-trajectory/internal/domain/notes"
	"beneficiary-trajectory/internal/domain/trajectory/metrics"
	"beneficiary-trajectory/internal/platform/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const tracerName = "beneficiary-trajectory/trajectory"

// Sources son los repositorios que consume el motor. Todos de solo lectura salvo Notes.Create.
type Sources struct {
	Attendance attendance.Repository
	Notes      notes.Repository
	Activities activities.Repository
	Spaces     activities.SpaceRepository
	Actors     actors.Repository
}

type Options struct {
	Normalizer Normalizer
	Logger     logger.Logger
	Metrics    *metrics.Metrics

	// TracerProvider nil => el provider global de otel.
	TracerProvider trace.TracerProvider
}

// Assembler arma la trayectoria completa de un beneficiario.
type Assembler struct {
	attendance attendance.Repository
	notes      notes.Repository

	resolver  *Resolver
	projector Projector

	log     logger.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

func NewAssembler(src Sources, opts Options) *Assembler {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	tp := opts.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &Assembler{
		attendance: src.Attendance,
		notes:      src.Notes,
		resolver:   NewResolver(src.Activities, src.Spaces, src.Actors, log, opts.Metrics),
		projector:  NewProjector(opts.Normalizer),
		log:        log,
		metrics:    opts.Metrics,
		tracer:     tp.Tracer(tracerName),
	}
}

// Build trae asistencias y notas en paralelo, resuelve y proyecta cada registro en paralelo,
// y devuelve las entradas ordenadas de la más reciente a la más antigua.
// Si falla cualquiera de los dos listados no se devuelve timeline parcial.
func (a *Assembler) Build(ctx context.Context, beneficiaryID string) ([]Entry, error) {
	beneficiaryID = strings.TrimSpace(beneficiaryID)
	if beneficiaryID == "" {
		a.metrics.ObserveBuild("invalid", 0)
		return nil, ErrInvalidInput
	}

	start := time.Now()
	ctx, span := a.tracer.Start(ctx, "trajectory.Build",
		trace.WithAttributes(attribute.String("beneficiary.id", beneficiaryID)))
	defer span.End()

	records, ns, err := a.fetch(ctx, beneficiaryID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "source fetch failed")
		a.metrics.ObserveBuild("source_error", time.Since(start))
		a.log.Warn("trajectory build failed", map[string]any{
			"beneficiary_id": beneficiaryID,
			"error":          err,
		})
		return nil, err
	}

	out := a.resolveAll(ctx, records, ns)

	// Empates: se conserva el orden de obtención (asistencias, luego notas).
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Instant.After(out[j].Instant)
	})

	span.SetAttributes(
		attribute.Int("attendance.fetched", len(records)),
		attribute.Int("notes.fetched", len(ns)),
		attribute.Int("entries", len(out)),
	)
	a.metrics.ObserveBuild("ok", time.Since(start))
	a.log.Debug("trajectory built", map[string]any{
		"beneficiary_id": beneficiaryID,
		"entries":        len(out),
	})

	return out, nil
}

// fetch es la barrera de unión: ambos listados deben completar antes de resolver.
func (a *Assembler) fetch(ctx context.Context, beneficiaryID string) ([]attendance.Record, []notes.Note, error) {
	g, gctx := errgroup.WithContext(ctx)

	var (
		records []attendance.Record
		ns      []notes.Note
	)

	g.Go(func() error {
		out, err := a.attendance.ListByBeneficiary(gctx, beneficiaryID)
		if err != nil {
			return fmt.Errorf("%w: attendance: %w", ErrSourceFetch, err)
		}
		records = out
		return nil
	})

	g.Go(func() error {
		out, err := a.notes.ListByBeneficiary(gctx, beneficiaryID)
		if err != nil {
			return fmt.Errorf("%w: notes: %w", ErrSourceFetch, err)
		}
		ns = out
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return records, ns, nil
}

// resolveAll lanza una resolución por registro. Ninguna devuelve error, así que un
// fallo de referencia no cancela a las hermanas. Cada goroutine escribe solo su slot.
func (a *Assembler) resolveAll(ctx context.Context, records []attendance.Record, ns []notes.Note) []Entry {
	ctx, span := a.tracer.Start(ctx, "trajectory.resolve")
	defer span.End()

	attEntries := make([]Entry, len(records))
	attKept := make([]bool, len(records))
	noteEntries := make([]Entry, len(ns))

	var g errgroup.Group

	for i, rec := range records {
		g.Go(func() error {
			resolved, ok := a.resolver.ResolveAttendance(ctx, rec)
			if !ok {
				return nil
			}
			attEntries[i] = a.projector.Attendance(resolved)
			attKept[i] = true
			return nil
		})
	}

	for i, n := range ns {
		g.Go(func() error {
			noteEntries[i] = a.projector.Note(a.resolver.ResolveNote(ctx, n))
			return nil
		})
	}

	_ = g.Wait()

	out := make([]Entry, 0, len(records)+len(ns))
	for i, e := range attEntries {
		if attKept[i] {
			out = append(out, e)
		}
	}
	out = append(out, noteEntries...)

	for _, e := range out {
		if e.DateUnparsed {
			a.log.Warn("entry date could not be parsed", map[string]any{"entry_id": e.ID})
		}
	}
	return out
}
