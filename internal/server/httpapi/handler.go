package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/akarpovs/useradmin/internal/common"
	"github.com/akarpovs/useradmin/internal/server/models"
)

// Response bodies mirror the store vocabulary one to one: every domain
// outcome maps to a fixed message and status code, and no raw error text
// ever reaches the client.

func (s *Server) listUsers(c *gin.Context) {
	result, err := s.users.List(c.Request.Context())
	if err != nil {
		// listing never fails outward; serve the empty collection
		result = []models.User{}
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) getUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
		return
	}

	user, err := s.users.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) addUser(c *gin.Context) {
	ctx := c.Request.Context()

	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Warn(ctx, "no input data provided for adding user")
		c.JSON(http.StatusBadRequest, gin.H{"error": "No input data provided."})
		return
	}

	if verr := req.validate(); verr != nil {
		s.logger.Warn(ctx, "missing fields for adding user", "fields", strings.Join(verr.Missing, ", "))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields: " + strings.Join(verr.Missing, ", ")})
		return
	}

	created, err := s.users.Create(ctx, req.toUser())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": createFailureMessage(err)})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateUser(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Warn(ctx, "no input data provided for updating user")
		c.JSON(http.StatusBadRequest, gin.H{"error": "No input data provided."})
		return
	}

	if verr := req.validate(); verr != nil {
		s.logger.Warn(ctx, "missing fields for updating user", "fields", strings.Join(verr.Missing, ", "))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields: " + strings.Join(verr.Missing, ", ")})
		return
	}

	updated, err := s.users.Update(ctx, req.toUser())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": updateFailureMessage(err)})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "User not found."})
		return
	}

	if err := s.users.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "User not found."})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"status": "Failed to delete user."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "User deleted successfully."})
}

func createFailureMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrorDuplicateEmail):
		return "Email must be unique."
	case errors.Is(err, common.ErrorConnection):
		return "Database connection failed."
	default:
		return "Failed to insert user."
	}
}

func updateFailureMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return "User not found."
	case errors.Is(err, common.ErrorDuplicateEmail):
		return "Email must be unique."
	case errors.Is(err, common.ErrorConnection):
		return "Database connection failed."
	default:
		return "Failed to update user."
	}
}
