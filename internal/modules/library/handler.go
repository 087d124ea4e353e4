package library

import (
	"context"
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

// RegisterPublicRoutes exposes the destination galleries without auth.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/gallery/:destination", h.ListDestination)
}

// RegisterRoutes exposes the owner dashboard listing and likes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/my/content/:kind", h.ListMine)
	rg.POST("/content/:kind/:id/like", h.Like)
	rg.DELETE("/content/:kind/:id/like", h.Unlike)
}

// ListDestination godoc
// @Summary List content published to a destination surface
// @Tags Library
// @Produce json
// @Param destination path string true "Destination" Enums(media, portfolio, masterclass)
// @Success 200 {array} ContentView
// @Failure 400,500 {object} map[string]interface{}
// @Router /gallery/{destination} [get]
func (h *Handler) ListDestination(c *gin.Context) {
	dest, err := domain.ParseDestination(c.Param("destination"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid destination")
		return
	}

	views, err := h.service.ListDestination(c.Request.Context(), dest)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list content")
		return
	}
	response.Success(c, http.StatusOK, views)
}

// ListMine godoc
// @Summary List my content of one kind, with deletion countdowns
// @Tags Library
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Content kind" Enums(media, portfolio, masterclass)
// @Success 200 {array} ContentView
// @Failure 400,401,500 {object} map[string]interface{}
// @Router /my/content/{kind} [get]
func (h *Handler) ListMine(c *gin.Context) {
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

	views, err := h.service.ListMine(c.Request.Context(), kind, userID.(int64))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list content")
		return
	}
	response.Success(c, http.StatusOK, views)
}

func (h *Handler) Like(c *gin.Context) {
	h.toggleLike(c, h.service.Like)
}

func (h *Handler) Unlike(c *gin.Context) {
	h.toggleLike(c, h.service.Unlike)
}

func (h *Handler) toggleLike(c *gin.Context, op func(ctx context.Context, userID int64, kind domain.ContentKind, contentID string) error) {
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

	if err := op(c.Request.Context(), userID.(int64), kind, c.Param("id")); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to update like")
		return
	}
	c.Status(http.StatusNoContent)
}
