// Package rest exposes the inkpost HTTP API: signup/login and blog post CRUD
// protected by a bearer-token middleware.
package rest

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/inkpost/internal/logging"
	"github.com/dmitrijs2005/inkpost/internal/server/config"
	"github.com/dmitrijs2005/inkpost/internal/server/services"
)

type RestServer struct {
	address        string
	users          *services.UserService
	posts          *services.PostService
	logger         logging.Logger
	jwtSecret      []byte
	allowedOrigins string
}

func NewRestServer(cfg *config.Config, l logging.Logger, us *services.UserService, ps *services.PostService) (*RestServer, error) {
	gin.SetMode(cfg.GinMode)

	return &RestServer{
		address:        cfg.RunAddr,
		logger:         l.With("module", "rest_server"),
		users:          us,
		posts:          ps,
		jwtSecret:      []byte(cfg.SecretKey),
		allowedOrigins: cfg.CORSAllowedOrigins,
	}, nil
}

// Router assembles the gin engine with middleware and all routes.
func (s *RestServer) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(s.allowedOrigins, ",")
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", s.handleHealth)

	api := router.Group("/api")
	{
		api.POST("/signup", s.handleSignup)
		api.POST("/login", s.handleLogin)

		api.GET("/blog", s.handleListPosts)

		protected := api.Group("")
		protected.Use(s.requireAuth())
		{
			protected.POST("/blog", s.handleCreatePost)
			protected.PUT("/blog/:id", s.handleUpdatePost)
			protected.DELETE("/blog/:id", s.handleDeletePost)
		}
	}

	return router
}

// Run serves the API until ctx is cancelled, then shuts the listener down.
func (s *RestServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		_ = srv.Shutdown(context.Background())
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *RestServer) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "inkpost"})
}
