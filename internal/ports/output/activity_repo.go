package output

import (
	"context"

	"mergington/internal/domain/entities"
)

// ActivityRepository holds the roster. AddParticipant and RemoveParticipant
// perform their membership check and the write as one step and report
// domain.ErrAlreadyRegistered / domain.ErrNotRegistered themselves.
type ActivityRepository interface {
	FindAll(ctx context.Context) (map[string]entities.Activity, error)
	FindByName(ctx context.Context, name string) (*entities.Activity, error)
	AddParticipant(ctx context.Context, name, email string) (*entities.Activity, error)
	RemoveParticipant(ctx context.Context, name, email string) (*entities.Activity, error)
	Reset(ctx context.Context) error
}
