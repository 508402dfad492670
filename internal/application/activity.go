package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"mergington/internal/domain"
	"mergington/internal/domain/entities"
	"mergington/internal/ports/output"
)

const (
	opSignup     = "signup"
	opUnregister = "unregister"
	outcomeOK    = "ok"
)

// ActivityService implements the roster operations on top of an
// ActivityRepository.
type ActivityService struct {
	activityRepo output.ActivityRepository
	translator   output.T
	recorder     output.Recorder
	logger       *zap.Logger
}

func NewActivityService(
	activityRepo output.ActivityRepository,
	translator output.T,
	recorder output.Recorder,
	logger *zap.Logger,
) *ActivityService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActivityService{
		activityRepo: activityRepo,
		translator:   translator,
		recorder:     recorder,
		logger:       logger,
	}
}

func (s *ActivityService) ListActivities(ctx context.Context) (map[string]entities.Activity, error) {
	activities, err := s.activityRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find activities: %w", err)
	}
	return activities, nil
}

func (s *ActivityService) GetActivity(ctx context.Context, name string) (*entities.Activity, error) {
	return s.activityRepo.FindByName(ctx, name)
}

// Signup adds email to the activity roster and returns the confirmation
// message in the requested locale.
func (s *ActivityService) Signup(ctx context.Context, locale, activityName, email string) (string, error) {
	activity, err := s.activityRepo.AddParticipant(ctx, activityName, email)
	if err != nil {
		return "", s.fail(opSignup, activityName, email, err)
	}
	s.succeed(opSignup, activityName, email, activity)
	return s.translator.T(locale, "signup.confirmed", map[string]any{
		"Email":    email,
		"Activity": activityName,
	}), nil
}

// Unregister removes email from the activity roster and returns the
// confirmation message in the requested locale.
func (s *ActivityService) Unregister(ctx context.Context, locale, activityName, email string) (string, error) {
	activity, err := s.activityRepo.RemoveParticipant(ctx, activityName, email)
	if err != nil {
		return "", s.fail(opUnregister, activityName, email, err)
	}
	s.succeed(opUnregister, activityName, email, activity)
	return s.translator.T(locale, "unregister.confirmed", map[string]any{
		"Email":    email,
		"Activity": activityName,
	}), nil
}

func (s *ActivityService) succeed(op, activityName, email string, activity *entities.Activity) {
	s.recorder.RecordOperation(op, outcomeOK)
	s.recorder.SetParticipants(activityName, len(activity.Participants))
	s.logger.Info("roster updated",
		zap.String("operation", op),
		zap.String("activity", activityName),
		zap.String("email", email),
		zap.Int("participants", len(activity.Participants)),
	)
}

func (s *ActivityService) fail(op, activityName, email string, err error) error {
	code := domain.Code(err)
	if code == "" {
		s.recorder.RecordOperation(op, "error")
		s.logger.Error("roster operation failed",
			zap.String("operation", op),
			zap.String("activity", activityName),
			zap.Error(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}
	s.recorder.RecordOperation(op, code)
	s.logger.Debug("roster operation rejected",
		zap.String("operation", op),
		zap.String("activity", activityName),
		zap.String("email", email),
		zap.String("code", code),
	)
	return err
}

type nopRecorder struct{}

func (nopRecorder) RecordOperation(string, string) {}
func (nopRecorder) SetParticipants(string, int)    {}
