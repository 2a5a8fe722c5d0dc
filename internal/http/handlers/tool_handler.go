// README: Gateway tool discovery endpoint.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"trailhead/internal/gateway"
)

// ToolLister is the discovery slice of the gateway client.
type ToolLister interface {
	Tools(ctx context.Context) ([]gateway.ToolDescriptor, error)
}

type ToolHandler struct {
	tools ToolLister
}

func NewToolHandler(tools ToolLister) *ToolHandler {
	return &ToolHandler{tools: tools}
}

// List handles GET /api/tools. Discovery failure is reported as a degraded
// body rather than an error status: the gateway being down is an expected
// operating mode.
func (h *ToolHandler) List(c *gin.Context) {
	descriptors, err := h.tools.Tools(c.Request.Context())
	if err != nil {
		writeJSON(c, http.StatusOK, gin.H{"available": false, "tools": []gateway.ToolDescriptor{}})
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"available": true, "tools": descriptors})
}
