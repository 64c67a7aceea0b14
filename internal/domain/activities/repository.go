package activities

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (Activity, error)
}

type SpaceRepository interface {
	GetByID(ctx context.Context, id string) (Space, error)
}
