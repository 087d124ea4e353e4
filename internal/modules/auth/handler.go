package auth

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
	g := rg.Group("/auth")
	{
		g.POST("/register", h.Register)
		g.POST("/login", h.Login)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid registration payload")
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	switch {
	case err == nil:
		response.Success(c, http.StatusCreated, res)
	case errors.Is(err, ErrEmailAlreadyExists):
		response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "email already registered")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "registration failed")
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid login payload")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	switch {
	case err == nil:
		response.Success(c, http.StatusOK, res)
	case errors.Is(err, ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "wrong email or password")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "login failed")
	}
}
