package users

import (
	"context"

	"github.com/akarpovs/useradmin/internal/server/models"
)

// Repository describes the CRUD operations on the user table. Failures are
// reported through the sentinel errors in the common package; no raw store
// error crosses this boundary unclassified.
type Repository interface {
	// Create inserts a user and returns the canonical stored row,
	// re-read by the newly assigned id.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// List returns all users ordered by ascending id. An empty store
	// yields an empty slice, never an error.
	List(ctx context.Context) ([]models.User, error)

	// GetByID returns the user with the given id.
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// Update replaces all non-id fields of the row matching user.ID and
	// returns the canonical stored row.
	Update(ctx context.Context, user *models.User) (*models.User, error)

	// Delete removes the row with the given id.
	Delete(ctx context.Context, id int64) error
}
