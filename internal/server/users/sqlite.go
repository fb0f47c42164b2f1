package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/akarpovs/useradmin/internal/common"
	"github.com/akarpovs/useradmin/internal/dbx"
	"github.com/akarpovs/useradmin/internal/server/models"
	"github.com/akarpovs/useradmin/internal/server/storage"
)

// SQLiteRepository implements Repository against the storage gateway. Every
// operation checks its own connection out of the pool and releases it before
// returning.
type SQLiteRepository struct {
	gateway *storage.Gateway
}

func NewSQLiteRepository(gateway *storage.Gateway) *SQLiteRepository {
	return &SQLiteRepository{gateway: gateway}
}

// isUniqueViolation reports whether err is the driver's UNIQUE constraint
// error (the email column is the only unique non-pk column in the schema).
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}

// classify converts a raw store error into the repository vocabulary.
func classify(err error) error {
	if isUniqueViolation(err) {
		return common.ErrorDuplicateEmail
	}
	return fmt.Errorf("%w: %v", common.ErrorStorage, err)
}

// getByID runs on an already-acquired handle so Create and Update can
// re-read on the same connection they wrote with.
func (r *SQLiteRepository) getByID(ctx context.Context, db dbx.DBTX, id int64) (*models.User, error) {
	query := `SELECT user_id, name, email, phone, address, country FROM users WHERE user_id = ?`

	u := &models.User{}
	err := db.QueryRowContext(ctx, query, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Address, &u.Country)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, classify(err)
	}
	return u, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	conn, err := r.gateway.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	query := `INSERT INTO users (name, email, phone, address, country) VALUES (?, ?, ?, ?, ?)`
	res, err := conn.ExecContext(ctx, query,
		user.Name, user.Email, user.Phone, user.Address, user.Country)
	if err != nil {
		return nil, classify(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, classify(err)
	}

	// re-read so store-applied normalization is reflected
	return r.getByID(ctx, conn, id)
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.User, error) {
	conn, err := r.gateway.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	query := `SELECT user_id, name, email, phone, address, country FROM users ORDER BY user_id`
	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	result := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Address, &u.Country); err != nil {
			return nil, classify(err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	conn, err := r.gateway.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	return r.getByID(ctx, conn, id)
}

func (r *SQLiteRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	conn, err := r.gateway.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	query := `UPDATE users
		SET name = ?, email = ?, phone = ?, address = ?, country = ?
		WHERE user_id = ?`
	res, err := conn.ExecContext(ctx, query,
		user.Name, user.Email, user.Phone, user.Address, user.Country, user.ID)
	if err != nil {
		return nil, classify(err)
	}

	ra, err := res.RowsAffected()
	if err != nil {
		return nil, classify(err)
	}
	if ra == 0 {
		return nil, common.ErrorNotFound
	}

	return r.getByID(ctx, conn, user.ID)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	conn, err := r.gateway.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	query := `DELETE FROM users WHERE user_id = ?`
	res, err := conn.ExecContext(ctx, query, id)
	if err != nil {
		return classify(err)
	}

	ra, err := res.RowsAffected()
	if err != nil {
		return classify(err)
	}
	if ra == 0 {
		return common.ErrorNotFound
	}
	return nil
}
