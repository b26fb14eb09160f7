package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Industries returns the closed industry classification set the create form
// selects from.
func (s *Server) Industries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"industries": s.industries.All(),
	})
}
