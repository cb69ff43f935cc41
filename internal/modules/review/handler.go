package review

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewrelay/internal/pkg/response"
	"reviewrelay/internal/pkg/validator"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/reviews", h.List)
	r.POST("/reviews", h.Create)
	r.DELETE("/reviews", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	reviews, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "storage unavailable")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"reviews": reviews})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validator.Validate(req); errs != nil {
		response.Error(c, http.StatusBadRequest, requiredFieldsMessage(errs, "name", "text"))
		return
	}

	rec, err := h.svc.Append(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			response.Error(c, http.StatusBadRequest, "name and text are required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "storage unavailable")
		return
	}

	response.OK(c, http.StatusOK, gin.H{"review": rec})
}

func (h *Handler) Delete(c *gin.Context) {
	var req DeleteReviewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validator.Validate(req); errs != nil {
		response.Error(c, http.StatusBadRequest, requiredFieldsMessage(errs, "name"))
		return
	}

	removed, err := h.svc.DeleteByName(c.Request.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			response.Error(c, http.StatusBadRequest, "name is required")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, fmt.Sprintf("No reviews found for %s", req.Name))
		default:
			response.Error(c, http.StatusInternalServerError, "storage unavailable")
		}
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"message": fmt.Sprintf("Deleted %d review(s) for %s", removed, req.Name),
	})
}

// requiredFieldsMessage names the failed fields in a stable order.
func requiredFieldsMessage(errs map[string]string, fields ...string) string {
	for _, f := range fields {
		if _, bad := errs[f]; bad {
			return fmt.Sprintf("%s is required", f)
		}
	}
	return "invalid request"
}
