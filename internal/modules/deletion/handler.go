package deletion

import (
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
		content.POST("/save", h.Save)
		content.POST("/restore", h.Restore)
		content.DELETE("", h.HardDelete)
		content.GET("/deletion-info", h.GetDeletionInfo)
	}
}

// Save godoc
// @Summary Save content pending deletion
// @Description Marks the item as saved so it is never auto-deleted. Status is normalized to draft.
// @Tags Deletion
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Content kind" Enums(media, portfolio, masterclass)
// @Param id path string true "Content ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400,403,404,409,500 {object} map[string]interface{}
// @Router /content/{kind}/{id}/save [post]
func (h *Handler) Save(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}
	actorID, ok := h.actor(c)
	if !ok {
		return
	}
	h.respond(c, h.service.Save(c.Request.Context(), kind, c.Param("id"), actorID))
}

// Restore godoc
// @Summary Restore content to a clean draft
// @Description Clears the deletion countdown, the saved flag and all destinations.
// @Tags Deletion
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Content kind" Enums(media, portfolio, masterclass)
// @Param id path string true "Content ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400,403,404,409,500 {object} map[string]interface{}
// @Router /content/{kind}/{id}/restore [post]
func (h *Handler) Restore(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}
	actorID, ok := h.actor(c)
	if !ok {
		return
	}
	h.respond(c, h.service.Restore(c.Request.Context(), kind, c.Param("id"), actorID))
}

// HardDelete godoc
// @Summary Permanently delete content
// @Description Owner-only, irreversible. Dependent likes are removed.
// @Tags Deletion
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Content kind" Enums(media, portfolio, masterclass)
// @Param id path string true "Content ID"
// @Success 204
// @Failure 400,403,404,409,500 {object} map[string]interface{}
// @Router /content/{kind}/{id} [delete]
func (h *Handler) HardDelete(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}
	actorID, ok := h.actor(c)
	if !ok {
		return
	}

	err := h.service.HardDelete(c.Request.Context(), kind, c.Param("id"), actorID)
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}
	h.respond(c, err)
}

// GetDeletionInfo godoc
// @Summary Deletion countdown for one item
// @Tags Deletion
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Content kind" Enums(media, portfolio, masterclass)
// @Param id path string true "Content ID"
// @Success 200 {object} DeletionInfoResponse
// @Failure 400,404,500 {object} map[string]interface{}
// @Router /content/{kind}/{id}/deletion-info [get]
func (h *Handler) GetDeletionInfo(c *gin.Context) {
	kind, ok := h.kind(c)
	if !ok {
		return
	}

	info, err := h.service.GetDeletionInfo(c.Request.Context(), kind, c.Param("id"))
	if err != nil {
		h.respond(c, err)
		return
	}
	response.Success(c, http.StatusOK, DeletionInfoResponse{
		ID:   c.Param("id"),
		Kind: string(kind),
		Info: *info,
	})
}

func (h *Handler) actor(c *gin.Context) (int64, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing identity")
		return 0, false
	}
	return userID.(int64), true
}

func (h *Handler) kind(c *gin.Context) (domain.ContentKind, bool) {
	kind, err := domain.ParseContentKind(c.Param("kind"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid content kind")
		return "", false
	}
	return kind, true
}

func (h *Handler) respond(c *gin.Context, err error) {
	switch {
	case err == nil:
		response.Success(c, http.StatusOK, gin.H{"id": c.Param("id")})
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
