package delivery

import (
	"net/http"
	"strconv"

	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	useCase usecase.CategoryUseCase
	log     *logrus.Logger
}

func NewCategoryHandler(uc usecase.CategoryUseCase, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *CategoryHandler) RegisterRoutes(router gin.IRouter) {
	categories := router.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.GET("/:id", h.GetCategoryByID)
		categories.POST("", h.CreateCategory)
		categories.DELETE("", h.DeleteCategory)
	}
}

type categoryNameRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.useCase.ListCategories()
	if err != nil {
		h.log.Errorf("Failed to list categories: %v", err)
		ErrorResponse(c, mapErrorToStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		h.log.Warnf("Invalid category ID parameter: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	category, err := h.useCase.GetCategoryByID(id)
	if err != nil {
		h.log.Warnf("Failed to get category by ID %d: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req categoryNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for create category: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	category, err := h.useCase.CreateCategory(req.Name)
	if err != nil {
		h.log.Warnf("Failed to create category '%s': %v", req.Name, err)
		ErrorResponse(c, mapErrorToStatus(err), err.Error())
		return
	}

	h.log.Infof("Category created successfully: ID %d, Name '%s'", category.ID, category.Name)
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Category added successfully",
		"category": category,
	})
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	var req categoryNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for delete category: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.useCase.DeleteCategory(req.Name); err != nil {
		h.log.Warnf("Failed to delete category '%s': %v", req.Name, err)
		ErrorResponse(c, mapErrorToStatus(err), err.Error())
		return
	}

	h.log.Infof("Category deleted successfully: Name '%s'", req.Name)
	c.JSON(http.StatusOK, gin.H{"message": "Category removed successfully"})
}
