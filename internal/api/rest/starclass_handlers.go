package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/starcore/astrocore/internal/stellarclass"
)

// ParseRequest binds GET /api/v1/starclass/parse query parameters.
type ParseRequest struct {
	Text string `form:"text" binding:"required"`
}

// ParseResponse is the parsed StellarClass, rendered for JSON transport.
type ParseResponse struct {
	Render string `json:"render"`
	PackV2 string `json:"pack_v2"`
	PackV1 string `json:"pack_v1"`
}

func (s *Server) parseStarClass(c *gin.Context) {
	var req ParseRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	class := stellarclass.Parse(req.Text)
	c.JSON(http.StatusOK, ParseResponse{
		Render: class.String(),
		PackV2: fmt.Sprintf("0x%04x", class.PackV2()),
		PackV1: fmt.Sprintf("0x%04x", class.PackV1()),
	})
}

// RenderRequest binds GET /api/v1/starclass/render query parameters.
type RenderRequest struct {
	V2 uint16 `form:"v2" binding:"required"`
}

func (s *Server) renderStarClass(c *gin.Context) {
	var req RenderRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	class, err := stellarclass.UnpackV2(req.V2)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"render": class.String()})
}
