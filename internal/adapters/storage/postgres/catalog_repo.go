package postgres

import (
	"context"
	"database/sql"
	"strings"

	"beneficiary-trajectory/internal/domain/activities"
	"beneficiary-trajectory/internal/domain/actors"
)

type ActivitiesRepo struct {
	db *sql.DB
}

func NewActivitiesRepo(db *sql.DB) *ActivitiesRepo {
	return &ActivitiesRepo{db: db}
}

func (r *ActivitiesRepo) GetByID(ctx context.Context, id string) (activities.Activity, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return activities.Activity{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, scheduled_date, space_id, responsible
		FROM activities
		WHERE id = $1
	`, id)

	var a activities.Activity
	var spaceID sql.NullString
	if err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Description,
		&a.ScheduledDate,
		&spaceID,
		&a.Responsible,
	); err != nil {
		return activities.Activity{}, notFound(err)
	}
	a.SpaceID = spaceID.String

	return a, nil
}

type SpacesRepo struct {
	db *sql.DB
}

func NewSpacesRepo(db *sql.DB) *SpacesRepo {
	return &SpacesRepo{db: db}
}

func (r *SpacesRepo) GetByID(ctx context.Context, id string) (activities.Space, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return activities.Space{}, ErrNotFound
	}

	var s activities.Space
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name FROM spaces WHERE id = $1
	`, id).Scan(&s.ID, &s.Name)
	if err != nil {
		return activities.Space{}, notFound(err)
	}
	return s, nil
}

type ActorsRepo struct {
	db *sql.DB
}

func NewActorsRepo(db *sql.DB) *ActorsRepo {
	return &ActorsRepo{db: db}
}

func (r *ActorsRepo) GetByID(ctx context.Context, id string) (actors.Actor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return actors.Actor{}, ErrNotFound
	}

	var a actors.Actor
	var role string
	err := r.db.QueryRowContext(ctx, `
		SELECT id, display_name, role FROM actors WHERE id = $1
	`, id).Scan(&a.ID, &a.DisplayName, &role)
	if err != nil {
		return actors.Actor{}, notFound(err)
	}
	a.Role = actors.Role(role)
	return a, nil
}
