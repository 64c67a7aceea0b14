package memory

import (
	"context"
	"sync"

	"beneficiary-trajectory/internal/domain/activities"
	"beneficiary-trajectory/internal/domain/actors"
)

// Actividades, espacios y actores los administran otros módulos del portal;
// acá solo se consultan. Put existe para seeds.

type ActivityRepo struct {
	mu   sync.RWMutex
	byID map[string]activities.Activity
}

func NewActivityRepo() *ActivityRepo {
	return &ActivityRepo{byID: make(map[string]activities.Activity)}
}

func (r *ActivityRepo) Put(a activities.Activity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[a.ID] = a
}

func (r *ActivityRepo) GetByID(ctx context.Context, id string) (activities.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return activities.Activity{}, ErrNotFound
	}
	return a, nil
}

type SpaceRepo struct {
	mu   sync.RWMutex
	byID map[string]activities.Space
}

func NewSpaceRepo() *SpaceRepo {
	return &SpaceRepo{byID: make(map[string]activities.Space)}
}

func (r *SpaceRepo) Put(s activities.Space) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[s.ID] = s
}

func (r *SpaceRepo) GetByID(ctx context.Context, id string) (activities.Space, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return activities.Space{}, ErrNotFound
	}
	return s, nil
}

type ActorRepo struct {
	mu   sync.RWMutex
	byID map[string]actors.Actor
}

func NewActorRepo() *ActorRepo {
	return &ActorRepo{byID: make(map[string]actors.Actor)}
}

func (r *ActorRepo) Put(a actors.Actor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[a.ID] = a
}

func (r *ActorRepo) GetByID(ctx context.Context, id string) (actors.Actor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return actors.Actor{}, ErrNotFound
	}
	return a, nil
}
