// Package main provides the entry point for the astrocore server.
//
// The server exposes stellar classification, JPL ephemeris evaluation,
// and Hipparcos star catalog lookups over a REST API.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/starcore/astrocore/internal/api/rest"
	"github.com/starcore/astrocore/internal/catalog"
	"github.com/starcore/astrocore/internal/common/service"
	"github.com/starcore/astrocore/internal/database"
	"github.com/starcore/astrocore/internal/jplephem"
	"github.com/starcore/astrocore/internal/nameindex"
	"github.com/starcore/astrocore/internal/nameindex/store"
)

// Version information (set during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// Config holds server configuration
type Config struct {
	Port        int    `json:"port"`
	Host        string `json:"host"`
	EphemerisDE string `json:"ephemeris_de"`
	Debug       bool   `json:"debug"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Port:        8080,
		Host:        "0.0.0.0",
		EphemerisDE: os.Getenv("ASTROCORE_DE_FILE"),
		Debug:       true,
	}
}

func main() {
	fmt.Printf("astrocore server %s (built %s)\n", Version, BuildTime)
	fmt.Println("==========================================")

	config := DefaultConfig()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Printf("Received signal %v, shutting down...", sig)
		cancel()
	}()

	if err := run(ctx, config); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server stopped")
}

// catalogService adapts the Hipparcos catalog's load lifecycle to
// service.Service so its health is reported by GET /api/v1/health.
type catalogService struct {
	*service.BaseService
	catalog *catalog.HipparcosCatalog
}

func newCatalogService(cat *catalog.HipparcosCatalog) *catalogService {
	return &catalogService{
		BaseService: service.NewBaseService("star-catalog"),
		catalog:     cat,
	}
}

func (c *catalogService) Initialize(ctx context.Context) error {
	if err := c.catalog.Load(ctx); err != nil {
		c.SetUnhealthy(err.Error())
		return err
	}
	c.SetHealthy(fmt.Sprintf("%d stars loaded", c.catalog.Count()))
	return nil
}

func run(ctx context.Context, config Config) error {
	db := database.NewInMemoryDB()

	starCatalog := catalog.NewHipparcosCatalog()
	catSvc := newCatalogService(starCatalog)
	if err := catSvc.Initialize(ctx); err != nil {
		log.Printf("Warning: failed to load star catalog: %v", err)
	}
	catalog.InitializeStarNames(starCatalog)

	names := nameindex.New()
	catalog.SeedNameIndex(names)
	nameStore := store.New(db)
	if err := nameStore.Save(ctx, names, hipNumbers(catalog.BrightStarNames)); err != nil {
		log.Printf("Warning: failed to persist name index snapshot: %v", err)
	}

	restConfig := rest.Config{
		Address: fmt.Sprintf("%s:%d", config.Host, config.Port),
		Debug:   config.Debug,
	}
	server := rest.NewServer(restConfig, starCatalog)
	server.RegisterComponent(catSvc)

	if config.EphemerisDE != "" {
		f, err := os.Open(config.EphemerisDE)
		if err != nil {
			log.Printf("Warning: failed to open ephemeris file %s: %v", config.EphemerisDE, err)
		} else {
			defer f.Close()
			eph, err := jplephem.Load(f)
			if err != nil {
				log.Printf("Warning: failed to load ephemeris file %s: %v", config.EphemerisDE, err)
			} else {
				server.SetEphemeris(eph)
				log.Printf("Loaded ephemeris DE%d", eph.DENum())
			}
		}
	}

	httpServer := &http.Server{
		Addr:    restConfig.Address,
		Handler: server.Handler(),
	}

	log.Printf("Starting server on %s:%d", config.Host, config.Port)

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	log.Printf("Server is ready at http://%s:%d", config.Host, config.Port)
	log.Println("")
	log.Println("API Endpoints:")
	log.Println("  GET  /api/v1/health             - Health check")
	log.Println("  GET  /api/v1/catalog/stars       - Star cone search")
	log.Println("  GET  /api/v1/catalog/stars/bright - Bright stars")
	log.Println("  GET  /api/v1/catalog/stars/:id   - Star by HIP number")
	log.Println("  GET  /api/v1/starclass/parse     - Parse a spectral class string")
	log.Println("  GET  /api/v1/starclass/render    - Render a packed V2 class")
	log.Println("  GET  /api/v1/ephemeris/position  - Planet/Moon position")
	log.Println("")

	select {
	case <-ctx.Done():
		log.Println("Shutting down gracefully...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errChan:
		return err
	}
}

func hipNumbers(names map[int]string) []int {
	out := make([]int, 0, len(names))
	for hip := range names {
		out = append(out, hip)
	}
	return out
}
