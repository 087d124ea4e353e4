package publication

import (
	"context"
	"errors"
	"net/http"

	"creatorhub/internal/domain"
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
	content := rg.Group("/content/:kind/:id")
	{
		content.POST("/publish", h.Publish)
		content.POST("/unpublish", h.Unpublish)
	}
}

// Publish godoc
// @Summary Publish content to a destination
// @Description Adds the destination to the item's published_to set. Re-publishing a pending-deletion item cancels its countdown.
// @Tags Publication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Content kind" Enums(media, portfolio, masterclass)
// @Param id path string true "Content ID"
// @Param request body PublishRequest true "Target destination"
// @Success 200 {object} map[string]interface{}
// @Failure 400,403,404,409,500 {object} map[string]interface{}
// @Router /content/{kind}/{id}/publish [post]
func (h *Handler) Publish(c *gin.Context) {
	h.mutate(c, h.service.Publish)
}

// Unpublish godoc
// @Summary Remove content from a destination
// @Tags Publication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Content kind" Enums(media, portfolio, masterclass)
// @Param id path string true "Content ID"
// @Param request body PublishRequest true "Destination to remove"
// @Success 200 {object} map[string]interface{}
// @Failure 400,403,404,409,500 {object} map[string]interface{}
// @Router /content/{kind}/{id}/unpublish [post]
func (h *Handler) Unpublish(c *gin.Context) {
	h.mutate(c, h.service.Unpublish)
}

func (h *Handler) mutate(c *gin.Context, op func(ctx context.Context, kind domain.ContentKind, id string, dest domain.Destination, actorID int64) error) {
	kind, err := domain.ParseContentKind(c.Param("kind"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid content kind")
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing identity")
		return
	}

	var req PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "destination is required")
		return
	}

	err = op(c.Request.Context(), kind, c.Param("id"), domain.Destination(req.Destination), userID.(int64))
	switch {
	case err == nil:
		response.Success(c, http.StatusOK, gin.H{"id": c.Param("id")})
	case errors.Is(err, ErrInvalidDestination):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "unknown destination")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "content not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "only the owner can do this")
	case errors.Is(err, ErrConflict):
		response.Error(c, http.StatusConflict, "CONFLICT", "content was modified concurrently, retry")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "persistence error")
	}
}
