package trajectory

import (
	"context"
	"strings"

	"beneficiary-trajectory/internal/domain/activities"
	"beneficiary-trajectory/internal/domain/actors"
	"beneficiary-trajectory/internal/domain/attendance"
	"beneficiary-trajectory/internal/domain/notes"
	"beneficiary-trajectory/internal/domain/trajectory/metrics"
	"beneficiary-trajectory/internal/platform/logger"
)

// Resolver resuelve las referencias de cada registro. Cada llamada es independiente:
// no comparte estado mutable con las demás y solo lee de los repositorios.
type Resolver struct {
	activities activities.Repository
	spaces     activities.SpaceRepository
	actors     actors.Repository

	log     logger.Logger
	metrics *metrics.Metrics
}

func NewResolver(
	activityRepo activities.Repository,
	spaceRepo activities.SpaceRepository,
	actorRepo actors.Repository,
	log logger.Logger,
	m *metrics.Metrics,
) *Resolver {
	if log == nil {
		log = logger.Discard()
	}
	return &Resolver{
		activities: activityRepo,
		spaces:     spaceRepo,
		actors:     actorRepo,
		log:        log,
		metrics:    m,
	}
}

// ResolveAttendance devuelve false si la actividad no existe: la asistencia sin su
// actividad no se muestra. Un espacio faltante se reemplaza por SpaceNotFoundLabel.
func (r *Resolver) ResolveAttendance(ctx context.Context, rec attendance.Record) (ResolvedAttendance, bool) {
	act, err := r.activities.GetByID(ctx, strings.TrimSpace(rec.ActivityID))
	if err != nil {
		r.log.Debug("attendance dropped: activity lookup failed", map[string]any{
			"attendance_id": rec.ID,
			"activity_id":   rec.ActivityID,
			"error":         err,
		})
		r.metrics.IncDropped("activity_missing")
		return ResolvedAttendance{}, false
	}

	return ResolvedAttendance{
		Record:    rec,
		Activity:  act,
		SpaceName: r.spaceName(ctx, act),
	}, true
}

func (r *Resolver) spaceName(ctx context.Context, act activities.Activity) string {
	spaceID := strings.TrimSpace(act.SpaceID)
	if spaceID != "" {
		sp, err := r.spaces.GetByID(ctx, spaceID)
		if err == nil {
			return sp.Name
		}
		r.log.Debug("space lookup failed", map[string]any{
			"activity_id": act.ID,
			"space_id":    spaceID,
			"error":       err,
		})
	}
	r.metrics.IncPlaceholder("space")
	return SpaceNotFoundLabel
}

// ResolveNote nunca descarta: sin autor, la nota sale con AuthorNotFoundLabel.
func (r *Resolver) ResolveNote(ctx context.Context, n notes.Note) ResolvedNote {
	a, err := r.actors.GetByID(ctx, strings.TrimSpace(n.AuthorID))
	if err != nil {
		r.log.Debug("note author lookup failed", map[string]any{
			"note_id":   n.ID,
			"author_id": n.AuthorID,
			"error":     err,
		})
		r.metrics.IncPlaceholder("author")
		return ResolvedNote{Note: n, AuthorName: AuthorNotFoundLabel}
	}

	return ResolvedNote{
		Note:       n,
		AuthorName: a.DisplayName,
		AuthorRole: a.Role,
	}
}
