package server

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"hr-management-api/internal/config"
	"hr-management-api/internal/handlers"
	"hr-management-api/internal/middleware"
	"hr-management-api/internal/store"
)

// Container holds all application dependencies: the configuration, the
// process-wide Mongo client and the token service. Both deployment modes
// (server and Lambda) build their routers from it.
type Container struct {
	Config *config.Config
	Mongo  *store.MongoDB
	Store  *store.MongoStore
	Auth   *middleware.AuthService
}

// NewContainer validates configuration, connects to MongoDB and prepares
// the shared services.
func NewContainer(cfg *config.Config) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	mongo, err := store.NewMongoDB(cfg.Mongo)
	if err != nil {
		return nil, fmt.Errorf("initialize mongodb: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer cancel()
	if err := mongo.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	return &Container{
		Config: cfg,
		Mongo:  mongo,
		Store:  store.NewMongoStore(mongo),
		Auth:   middleware.NewAuthService(cfg.JWT.Secret, cfg.TokenDuration()),
	}, nil
}

// RouterConfig returns the handler wiring backed by this container.
func (c *Container) RouterConfig() *handlers.RouterConfig {
	return &handlers.RouterConfig{
		Resources:     c.Store,
		Execute:       c.Store,
		Credentials:   c.Store,
		AuthService:   c.Auth,
		AllowedOrigin: c.Config.CORS.AllowedOrigin,
	}
}

// NewRouter builds a gin engine with the shared middleware stack applied.
// Route registration is left to the caller so Lambda binaries can carry
// only their own route family.
func (c *Container) NewRouter() *gin.Engine {
	if c.Config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	handlers.ConfigureRouter(r, c.Config.CORS.AllowedOrigin)
	return r
}

// Close releases the Mongo client.
func (c *Container) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return c.Mongo.Close(ctx)
}
