package delivery

import (
	"net/http"
	"strconv"

	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type FavoriteHandler struct {
	useCase usecase.FavoriteUseCase
	log     *logrus.Logger
}

func NewFavoriteHandler(uc usecase.FavoriteUseCase, logger *logrus.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *FavoriteHandler) RegisterRoutes(router gin.IRouter) {
	favorites := router.Group("/favorites")
	{
		favorites.GET("", h.ListFavorites)
		favorites.POST("", h.AddFavorite)
		favorites.DELETE("", h.RemoveFavorite)
	}
}

type favoriteRequest struct {
	UserID    *int `json:"user_id" binding:"required"`
	ProductID *int `json:"product_id" binding:"required"`
}

func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	if userIDStr := c.Query("user_id"); userIDStr != "" {
		userID, err := strconv.Atoi(userIDStr)
		if err != nil {
			h.log.Warnf("Invalid user_id filter parameter: %s", userIDStr)
			ErrorResponse(c, http.StatusBadRequest, "Invalid user_id format")
			return
		}

		favorites, err := h.useCase.GetUserFavorites(userID)
		if err != nil {
			h.log.Warnf("Failed to get favorites for user %d: %v", userID, err)
			ErrorResponse(c, mapErrorToStatus(err), err.Error())
			return
		}
		c.JSON(http.StatusOK, favorites)
		return
	}

	favorites, err := h.useCase.ListFavorites()
	if err != nil {
		h.log.Errorf("Failed to list favorites: %v", err)
		ErrorResponse(c, mapErrorToStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, favorites)
}

func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for add favorite: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	favorite, err := h.useCase.AddFavorite(*req.UserID, *req.ProductID)
	if err != nil {
		h.log.Warnf("Failed to add favorite (user %d, product %d): %v", *req.UserID, *req.ProductID, err)
		ErrorResponse(c, mapErrorToStatus(err), err.Error())
		return
	}

	h.log.Infof("Favorite added for user %d, product %d", favorite.UserID, favorite.ProductID)
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Product added to favorites",
		"favorite": favorite,
	})
}

func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for remove favorite: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.useCase.RemoveFavorite(*req.UserID, *req.ProductID); err != nil {
		h.log.Warnf("Failed to remove favorite (user %d, product %d): %v", *req.UserID, *req.ProductID, err)
		ErrorResponse(c, mapErrorToStatus(err), err.Error())
		return
	}

	h.log.Infof("Favorite removed for user %d, product %d", *req.UserID, *req.ProductID)
	c.JSON(http.StatusOK, gin.H{"message": "Product removed from favorites"})
}
