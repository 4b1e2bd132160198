package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/starcore/astrocore/internal/catalog"
	"github.com/starcore/astrocore/internal/common/service"
	"github.com/starcore/astrocore/internal/jplephem"
)

// Server holds the HTTP server and its dependencies.
type Server struct {
	router      *gin.Engine
	starCatalog catalog.StarCatalog
	ephemeris   *jplephem.JPLEphemeris
	components  []service.Service
}

// RegisterComponent adds a component whose Health() is reported by
// GET /api/v1/health alongside the server's own status.
func (s *Server) RegisterComponent(c service.Service) {
	s.components = append(s.components, c)
}

// Config holds server configuration
type Config struct {
	Address string
	Debug   bool
}

// NewServer creates a new HTTP server
func NewServer(cfg Config, starCatalog catalog.StarCatalog) *Server {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		router:      gin.New(),
		starCatalog: starCatalog,
	}

	s.router.Use(gin.Recovery())
	s.router.Use(corsMiddleware())

	s.setupRoutes()

	return s
}

// SetEphemeris installs the loaded ephemeris served by
// GET /api/v1/ephemeris/position. A nil ephemeris makes that endpoint
// report 503 until one is set.
func (s *Server) SetEphemeris(eph *jplephem.JPLEphemeris) {
	s.ephemeris = eph
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api/v1")

	// Health check
	api.GET("/health", s.healthCheck)

	// Star catalog endpoints
	catalogGroup := api.Group("/catalog")
	{
		catalogGroup.GET("/stars", s.searchStars)
		catalogGroup.GET("/stars/bright", s.getBrightStars)
		catalogGroup.GET("/stars/:id", s.getStar)
	}

	// Stellar classification endpoints
	starclassGroup := api.Group("/starclass")
	{
		starclassGroup.GET("/parse", s.parseStarClass)
		starclassGroup.GET("/render", s.renderStarClass)
	}

	// Ephemeris endpoints
	ephemerisGroup := api.Group("/ephemeris")
	{
		ephemerisGroup.GET("/position", s.getEphemerisPosition)
	}
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// healthCheck returns server health status alongside the health of
// every registered component (see RegisterComponent).
func (s *Server) healthCheck(c *gin.Context) {
	components := make(map[string]service.HealthStatus, len(s.components))
	for _, comp := range s.components {
		components[comp.Name()] = comp.Health()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"version":    "1.0.0",
		"components": components,
	})
}
