package proxy

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewrelay/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Fallback is registered as the router's NoRoute handler: any POST on an
// unrecognized path is relayed upstream, everything else is a 404.
// OPTIONS never reaches here; the CORS middleware answers it first.
func (h *Handler) Fallback(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		response.Error(c, http.StatusNotFound, "Not found")
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil || payload == nil {
		response.Error(c, http.StatusBadRequest, "request body must be a JSON object")
		return
	}

	result, err := h.svc.Forward(c.Request.Context(), payload)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Data(result.Status, result.ContentType, result.Body)
}
