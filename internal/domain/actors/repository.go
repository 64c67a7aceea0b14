package actors

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (Actor, error)
}
