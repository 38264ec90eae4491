package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hr-management-api/internal/middleware"
	"hr-management-api/internal/resource"
	"hr-management-api/internal/store"
)

// Method lists advertised in CORS headers, per route group.
const (
	resourceMethods = "GET, POST, PUT, DELETE, OPTIONS"
	postOnlyMethods = "POST, OPTIONS"
)

// RouterConfig holds the dependencies routes are wired with.
type RouterConfig struct {
	Resources     store.ResourceStore
	Execute       store.ExecuteStore
	Credentials   store.CredentialStore
	AuthService   *middleware.AuthService
	AllowedOrigin string
}

// ConfigureRouter applies router-wide behavior: unknown verbs on known
// routes answer 405, unknown routes 404, both with CORS headers attached.
func ConfigureRouter(r *gin.Engine, allowedOrigin string) {
	cors := middleware.CORS(allowedOrigin, resourceMethods)
	r.HandleMethodNotAllowed = true
	r.NoMethod(cors, func(c *gin.Context) {
		respondError(c, http.StatusMethodNotAllowed, "Method not allowed")
	})
	r.NoRoute(cors, func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "Not found")
	})
}

// SetupRoutes registers every route family on one router. The server
// binary uses this; the Lambda binaries register only their own family.
func SetupRoutes(r *gin.Engine, cfg *RouterConfig) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "hr-management-api"})
	})

	for _, def := range resource.Definitions() {
		RegisterResource(r, cfg, def)
	}
	RegisterLogin(r, cfg)
	RegisterExecute(r, cfg)
}

// RegisterResource wires one resource family onto the router. The id is a
// query parameter, so each family owns a single route path; OPTIONS is
// answered by the CORS middleware before authentication.
func RegisterResource(r gin.IRouter, cfg *RouterConfig, def resource.Definition) {
	cors := middleware.CORS(cfg.AllowedOrigin, resourceMethods)
	auth := middleware.Authentication(cfg.AuthService)
	h := NewResourceHandler(def, cfg.Resources)

	path := "/" + def.Name
	r.OPTIONS(path, cors)
	r.GET(path, cors, auth, h.Get)
	r.POST(path, cors, auth, h.Create)
	r.PUT(path, cors, auth, h.Update)
	r.DELETE(path, cors, auth, h.Delete)
}

// RegisterLogin wires the unauthenticated login endpoint.
func RegisterLogin(r gin.IRouter, cfg *RouterConfig) {
	cors := middleware.CORS(cfg.AllowedOrigin, postOnlyMethods)
	h := NewAuthHandler(cfg.Credentials, cfg.AuthService)

	r.OPTIONS("/auth-login", cors)
	r.POST("/auth-login", cors, h.Login)
}

// RegisterExecute wires the authenticated ad-hoc query endpoint.
func RegisterExecute(r gin.IRouter, cfg *RouterConfig) {
	cors := middleware.CORS(cfg.AllowedOrigin, postOnlyMethods)
	auth := middleware.Authentication(cfg.AuthService)
	h := NewExecuteHandler(cfg.Execute)

	r.OPTIONS("/execute", cors)
	r.POST("/execute", cors, auth, h.Execute)
}
