package enrollment

import (
	"errors"
	"net/http"

	"creatorhub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/masterclasses/:id/enroll", h.Enroll)
	rg.GET("/my/enrollments", h.ListMine)
}

// Enroll godoc
// @Summary Enroll in a published masterclass
// @Description Charges the primary payment gateway, falling back to the secondary on failure.
// @Tags Enrollment
// @Produce json
// @Security BearerAuth
// @Param id path string true "Masterclass ID"
// @Success 201 {object} map[string]interface{}
// @Failure 400,401,402,404,409,500 {object} map[string]interface{}
// @Router /masterclasses/{id}/enroll [post]
func (h *Handler) Enroll(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	e, err := h.service.Enroll(c.Request.Context(), userID, c.Param("id"))
	switch {
	case err == nil:
		response.Success(c, http.StatusCreated, e)
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "masterclass not found")
	case errors.Is(err, ErrNotPublished):
		response.Error(c, http.StatusBadRequest, "NOT_PUBLISHED", "masterclass is not open for enrollment")
	case errors.Is(err, ErrOwnMasterclass):
		response.Error(c, http.StatusBadRequest, "OWN_MASTERCLASS", "cannot enroll in your own masterclass")
	case errors.Is(err, ErrAlreadyEnrolled):
		response.Error(c, http.StatusConflict, "ALREADY_ENROLLED", "already enrolled")
	case errors.Is(err, ErrPaymentFailed):
		response.Error(c, http.StatusPaymentRequired, "PAYMENT_FAILED", "payment failed on every gateway")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "enrollment failed")
	}
}

func (h *Handler) ListMine(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	list, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list enrollments")
		return
	}
	response.Success(c, http.StatusOK, list)
}
