// Package httpapi binds the REST surface to the users service: routing,
// request validation, CORS, and the mapping of domain outcomes to status
// codes and response bodies.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/akarpovs/useradmin/internal/logging"
	"github.com/akarpovs/useradmin/internal/server/users"
)

type Server struct {
	address         string
	readTimeout     time.Duration
	shutdownTimeout time.Duration
	logger          logging.Logger
	users           *users.Service
}

func NewServer(address string, readTimeout, shutdownTimeout time.Duration, l logging.Logger, us *users.Service) *Server {
	return &Server{
		address:         address,
		readTimeout:     readTimeout,
		shutdownTimeout: shutdownTimeout,
		logger:          l.With("module", "http_server"),
		users:           us,
	}
}

// Router assembles the gin engine with all middleware and routes. Split out
// from Run so tests can drive the handler chain without a listener.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	// all origins are allowed on every route
	r.Use(cors.Default())
	r.Use(requestID())
	r.Use(requestLogger(s.logger))

	api := r.Group("/api")
	{
		api.GET("/users", s.listUsers)
		api.GET("/users/:id", s.getUser)
		api.POST("/users/add", s.addUser)
		api.PUT("/users/update", s.updateUser)
		api.DELETE("/users/delete/:id", s.deleteUser)
	}

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:        s.address,
		Handler:     s.Router(),
		ReadTimeout: s.readTimeout,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
