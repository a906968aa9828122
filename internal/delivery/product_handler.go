package delivery

import (
	"net/http"
	"strconv"

	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	useCase usecase.ProductUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProductByID)
		products.POST("", h.CreateProduct)
	}
}

type createProductRequest struct {
	Name     string   `json:"name" binding:"required"`
	Category string   `json:"category" binding:"required"`
	Price    *float64 `json:"price" binding:"required"`
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		products, err := h.useCase.GetProductsByCategory(category)
		if err != nil {
			h.log.Warnf("Failed to filter products by category '%s': %v", category, err)
			ErrorResponse(c, mapErrorToStatus(err), err.Error())
			return
		}
		c.JSON(http.StatusOK, products)
		return
	}

	products, err := h.useCase.ListProducts()
	if err != nil {
		h.log.Errorf("Failed to list products: %v", err)
		ErrorResponse(c, mapErrorToStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		h.log.Warnf("Invalid product ID parameter: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	product, err := h.useCase.GetProductByID(id)
	if err != nil {
		h.log.Warnf("Failed to get product by ID %d: %v", id, err)
		ErrorResponse(c, mapErrorToStatus(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for create product: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.useCase.CreateProduct(req.Name, req.Category, *req.Price)
	if err != nil {
		h.log.Warnf("Failed to create product '%s': %v", req.Name, err)
		ErrorResponse(c, mapErrorToStatus(err), err.Error())
		return
	}

	h.log.Infof("Product created successfully: ID %d, Name '%s'", product.ID, product.Name)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Product added successfully",
		"product": product,
	})
}
