// README: Static destination catalog endpoint.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trailhead/internal/destinations"
)

type DestinationHandler struct{}

func NewDestinationHandler() *DestinationHandler {
	return &DestinationHandler{}
}

// List handles GET /api/destinations. An optional ?interest= filter narrows
// the catalog to matching categories.
func (h *DestinationHandler) List(c *gin.Context) {
	if interest := c.Query("interest"); interest != "" {
		writeJSON(c, http.StatusOK, gin.H{"matches": destinations.ByInterest(interest)})
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"destinations": destinations.All()})
}
