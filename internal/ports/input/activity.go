package input

import (
	"context"

	"mergington/internal/domain/entities"
)

type ActivityUseCase interface {
	ListActivities(ctx context.Context) (map[string]entities.Activity, error)
	GetActivity(ctx context.Context, name string) (*entities.Activity, error)
	Signup(ctx context.Context, locale, activityName, email string) (string, error)
	Unregister(ctx context.Context, locale, activityName, email string) (string, error)
}
