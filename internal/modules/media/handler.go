package media

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
	rg.POST("/content/:kind", h.Upload)
}

// Upload godoc
// @Summary Upload a media file and create a draft content record
// @Description The new item starts in draft with no publication destinations.
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Content kind" Enums(media, portfolio, masterclass)
// @Param file formData file true "Media file"
// @Param title formData string false "Title"
// @Param description formData string false "Description"
// @Success 201 {object} map[string]interface{}
// @Failure 400,401,413,500 {object} map[string]interface{}
// @Router /content/{kind} [post]
func (h *Handler) Upload(c *gin.Context) {
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

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "file is required")
		return
	}

	item, err := h.service.Upload(
		c.Request.Context(),
		userID.(int64),
		kind,
		c.PostForm("title"),
		c.PostForm("description"),
		fileHeader,
	)
	switch {
	case err == nil:
		response.Success(c, http.StatusCreated, item)
	case errors.Is(err, ErrEmptyFile), errors.Is(err, ErrInvalidFileType):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrFileTooLarge):
		response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "upload failed")
	}
}
