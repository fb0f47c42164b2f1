package users

import (
	"context"

	"github.com/akarpovs/useradmin/internal/logging"
	"github.com/akarpovs/useradmin/internal/server/models"
)

// Service wraps the repository with the domain log events: a line per
// inserted/updated/deleted row, a warning for not-found probes, an error for
// store failures. Outcomes pass through unchanged.
type Service struct {
	repo   Repository
	logger logging.Logger
}

func NewService(repo Repository, logger logging.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.With("module", "users"),
	}
}

func (s *Service) Create(ctx context.Context, user *models.User) (*models.User, error) {
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		s.logger.Error(ctx, "error inserting user", "error", err.Error())
		return nil, err
	}

	s.logger.Info(ctx, "inserted user", "user_id", created.ID)
	return created, nil
}

func (s *Service) List(ctx context.Context) ([]models.User, error) {
	result, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error(ctx, "error fetching users", "error", err.Error())
		return nil, err
	}

	s.logger.Info(ctx, "fetched users", "count", len(result))
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Warn(ctx, "no user found", "user_id", id)
		return nil, err
	}

	return user, nil
}

func (s *Service) Update(ctx context.Context, user *models.User) (*models.User, error) {
	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		s.logger.Error(ctx, "error updating user", "user_id", user.ID, "error", err.Error())
		return nil, err
	}

	s.logger.Info(ctx, "updated user", "user_id", updated.ID)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Warn(ctx, "error deleting user", "user_id", id, "error", err.Error())
		return err
	}

	s.logger.Info(ctx, "deleted user", "user_id", id)
	return nil
}
