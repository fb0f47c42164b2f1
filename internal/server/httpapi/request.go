package httpapi

import (
	"fmt"
	"strings"

	"github.com/akarpovs/useradmin/internal/common"
	"github.com/akarpovs/useradmin/internal/server/models"
)

// Request schemas use pointer fields so an absent key is distinguishable
// from a present-but-empty value. missingFields checks the whole required
// set and reports every absent name, never stopping at the first one.

type createUserRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Country *string `json:"country"`
}

type updateUserRequest struct {
	UserID  *int64  `json:"user_id"`
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Country *string `json:"country"`
}

// ValidationError carries the full ordered list of missing field names.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing fields: %s", strings.Join(e.Missing, ", "))
}

func (e *ValidationError) Unwrap() error {
	return common.ErrorValidation
}

func (r *createUserRequest) validate() *ValidationError {
	missing := []string{}
	for _, f := range []struct {
		name string
		set  bool
	}{
		{"name", r.Name != nil},
		{"email", r.Email != nil},
		{"phone", r.Phone != nil},
		{"address", r.Address != nil},
		{"country", r.Country != nil},
	} {
		if !f.set {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

func (r *createUserRequest) toUser() *models.User {
	return &models.User{
		Name:    *r.Name,
		Email:   *r.Email,
		Phone:   *r.Phone,
		Address: *r.Address,
		Country: *r.Country,
	}
}

func (r *updateUserRequest) validate() *ValidationError {
	missing := []string{}
	for _, f := range []struct {
		name string
		set  bool
	}{
		{"user_id", r.UserID != nil},
		{"name", r.Name != nil},
		{"email", r.Email != nil},
		{"phone", r.Phone != nil},
		{"address", r.Address != nil},
		{"country", r.Country != nil},
	} {
		if !f.set {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

func (r *updateUserRequest) toUser() *models.User {
	return &models.User{
		ID:      *r.UserID,
		Name:    *r.Name,
		Email:   *r.Email,
		Phone:   *r.Phone,
		Address: *r.Address,
		Country: *r.Country,
	}
}
