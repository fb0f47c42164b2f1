package httpapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpovs/useradmin/internal/common"
)

func TestCreateRequest_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		missing []string
	}{
		{
			name:    "all fields present",
			body:    `{"name":"A","email":"a@x.com","phone":"1","address":"a","country":"US"}`,
			missing: nil,
		},
		{
			name:    "single field absent",
			body:    `{"name":"A","email":"a@x.com","phone":"1","address":"a"}`,
			missing: []string{"country"},
		},
		{
			name:    "reports every absent field in order",
			body:    `{"name":"Bob"}`,
			missing: []string{"email", "phone", "address", "country"},
		},
		{
			name:    "empty object",
			body:    `{}`,
			missing: []string{"name", "email", "phone", "address", "country"},
		},
		{
			name:    "present but empty still counts as present",
			body:    `{"name":"","email":"","phone":"","address":"","country":""}`,
			missing: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req createUserRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			verr := req.validate()
			if tt.missing == nil {
				assert.Nil(t, verr)
				return
			}
			require.NotNil(t, verr)
			assert.Equal(t, tt.missing, verr.Missing)
		})
	}
}

func TestUpdateRequest_UserIDRequiredFirst(t *testing.T) {
	var req updateUserRequest
	require.NoError(t, json.Unmarshal([]byte(`{"phone":"1"}`), &req))

	verr := req.validate()
	require.NotNil(t, verr)
	assert.Equal(t, []string{"user_id", "name", "email", "address", "country"}, verr.Missing)
}

func TestValidationError_WrapsSentinel(t *testing.T) {
	verr := &ValidationError{Missing: []string{"email", "phone"}}
	assert.ErrorIs(t, verr, common.ErrorValidation)
	assert.Equal(t, "missing fields: email, phone", verr.Error())
}

func TestCreateRequest_ToUser(t *testing.T) {
	var req createUserRequest
	require.NoError(t, json.Unmarshal(
		[]byte(`{"name":"A","email":"a@x.com","phone":"1","address":"a","country":"US"}`), &req))
	require.Nil(t, req.validate())

	u := req.toUser()
	assert.Equal(t, int64(0), u.ID)
	assert.Equal(t, "A", u.Name)
	assert.Equal(t, "a@x.com", u.Email)
}
