package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/starcore/astrocore/internal/jplephem"
)

// PositionRequest binds GET /api/v1/ephemeris/position query parameters.
type PositionRequest struct {
	Body string  `form:"body" binding:"required"`
	TJD  float64 `form:"tjd" binding:"required"`
}

var ephemerisBodyNames = map[string]jplephem.Body{
	"mercury":  jplephem.Mercury,
	"venus":    jplephem.Venus,
	"emb":      jplephem.EarthMoonBary,
	"mars":     jplephem.Mars,
	"jupiter":  jplephem.Jupiter,
	"saturn":   jplephem.Saturn,
	"uranus":   jplephem.Uranus,
	"neptune":  jplephem.Neptune,
	"pluto":    jplephem.Pluto,
	"moon":     jplephem.Moon,
	"sun":      jplephem.Sun,
	"nutation": jplephem.Nutation,
	"ssb":      jplephem.SSB,
	"earth":    jplephem.Earth,
}

func (s *Server) getEphemerisPosition(c *gin.Context) {
	if s.ephemeris == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no ephemeris loaded"})
		return
	}

	var req PositionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	body, ok := ephemerisBodyNames[strings.ToLower(req.Body)]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown body: " + req.Body})
		return
	}

	pos := s.ephemeris.GetPlanetPosition(body, req.TJD)
	c.JSON(http.StatusOK, gin.H{"x": pos.X, "y": pos.Y, "z": pos.Z})
}
