package delivery

import (
	"errors"
	"net/http"

	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	useCase usecase.AuthUseCase
	log     *logrus.Logger
}

func NewAuthHandler(uc usecase.AuthUseCase, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *AuthHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/auth", h.Login)
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind login request: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	token, err := h.useCase.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			h.log.Warnf("Login failed for username '%s'", req.Username)
			ErrorResponse(c, http.StatusUnauthorized, "Unauthorized: invalid credentials")
			return
		}
		h.log.Errorf("Login failed for username '%s': %v", req.Username, err)
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.log.Infof("Login successful for username '%s'", req.Username)
	c.JSON(http.StatusOK, loginResponse{Token: token})
}
