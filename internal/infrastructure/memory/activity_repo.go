package memory

import (
	"context"
	"slices"
	"sync"

	"mergington/internal/domain"
	"mergington/internal/domain/entities"
	"mergington/internal/ports/output"
)

var _ output.ActivityRepository = (*ActivityRepository)(nil)

// ActivityRepository implements output.ActivityRepository in memory.
// Reads return copies; the roster is only changed through its methods.
type ActivityRepository struct {
	mu         sync.RWMutex
	seed       Seed
	activities map[string]*entities.Activity
}

// NewActivityRepository creates an ActivityRepository populated from seed.
func NewActivityRepository(seed Seed) *ActivityRepository {
	return &ActivityRepository{
		seed:       seed,
		activities: seed.build(),
	}
}

func (r *ActivityRepository) FindAll(ctx context.Context) (map[string]entities.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]entities.Activity, len(r.activities))
	for name, a := range r.activities {
		out[name] = a.Clone()
	}
	return out, nil
}

func (r *ActivityRepository) FindByName(ctx context.Context, name string) (*entities.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	c := a.Clone()
	return &c, nil
}

func (r *ActivityRepository) AddParticipant(ctx context.Context, name, email string) (*entities.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	if a.HasParticipant(email) {
		return nil, domain.ErrAlreadyRegistered
	}
	a.Participants = append(a.Participants, email)
	c := a.Clone()
	return &c, nil
}

func (r *ActivityRepository) RemoveParticipant(ctx context.Context, name, email string) (*entities.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	idx := slices.Index(a.Participants, email)
	if idx < 0 {
		return nil, domain.ErrNotRegistered
	}
	a.Participants = slices.Delete(a.Participants, idx, idx+1)
	c := a.Clone()
	return &c, nil
}

// Reset restores the seed roster.
func (r *ActivityRepository) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activities = r.seed.build()
	return nil
}
