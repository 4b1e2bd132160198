package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/starcore/astrocore/internal/catalog"
)

func (s *Server) searchStars(c *gin.Context) {
	if s.starCatalog == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "star catalog not available"})
		return
	}

	raStr := c.Query("ra")
	decStr := c.Query("dec")
	radiusStr := c.DefaultQuery("radius", "1.0")
	limitStr := c.DefaultQuery("limit", "100")
	minMagStr := c.DefaultQuery("min_mag", "-2")
	maxMagStr := c.DefaultQuery("max_mag", "12")

	ra, err := strconv.ParseFloat(raStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ra parameter"})
		return
	}

	dec, err := strconv.ParseFloat(decStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dec parameter"})
		return
	}

	radius, _ := strconv.ParseFloat(radiusStr, 64)
	limit, _ := strconv.Atoi(limitStr)
	minMag, _ := strconv.ParseFloat(minMagStr, 64)
	maxMag, _ := strconv.ParseFloat(maxMagStr, 64)

	query := catalog.ConeSearchQuery{
		RA:         ra,
		Dec:        dec,
		Radius:     radius,
		MinMag:     minMag,
		MagLimit:   maxMag,
		MaxResults: limit,
	}

	stars, err := s.starCatalog.ConeSearch(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(stars),
		"stars": stars,
	})
}

func (s *Server) getStar(c *gin.Context) {
	if s.starCatalog == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "star catalog not available"})
		return
	}

	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid star id"})
		return
	}

	star, err := s.starCatalog.GetStar(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "star not found"})
		return
	}

	c.JSON(http.StatusOK, star)
}

func (s *Server) getBrightStars(c *gin.Context) {
	if s.starCatalog == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "star catalog not available"})
		return
	}

	maxMagStr := c.DefaultQuery("max_mag", "6.5")
	maxMag, _ := strconv.ParseFloat(maxMagStr, 64)

	// GetBrightStars requires a concrete *HipparcosCatalog
	hipCat, ok := s.starCatalog.(*catalog.HipparcosCatalog)
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "bright star lookup not available"})
		return
	}

	stars, err := hipCat.GetBrightStars(c.Request.Context(), maxMag)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(stars),
		"stars": stars,
	})
}
