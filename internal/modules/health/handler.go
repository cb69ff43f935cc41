package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewrelay/internal/config"
	"reviewrelay/internal/pkg/response"
)

const serviceName = "reviewrelay"

type Handler struct {
	cfg *config.Config
}

func NewHandler(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.Status)
}

// Status reports the service identity and its upstream wiring.
func (h *Handler) Status(c *gin.Context) {
	response.OK(c, http.StatusOK, gin.H{
		"service":     serviceName,
		"upstream":    h.cfg.UpstreamURL,
		"model":       h.cfg.DefaultModel,
		"api_version": h.cfg.APIVersion,
	})
}
