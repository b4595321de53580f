package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/TraceKeep/custody_ledger_app/internal/apperrors"
	portssvc "github.com/TraceKeep/custody_ledger_app/internal/core/ports/services"
	"github.com/TraceKeep/custody_ledger_app/internal/dto"
	"github.com/TraceKeep/custody_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// productHandler handles HTTP requests for product records and their transitions.
type productHandler struct {
	productService portssvc.ProductSvcFacade
}

// newProductHandler creates a new productHandler.
func newProductHandler(productService portssvc.ProductSvcFacade) *productHandler {
	return &productHandler{
		productService: productService,
	}
}

// registerProductRoutes registers product and journal routes under /products
func registerProductRoutes(group *gin.RouterGroup, productService portssvc.ProductSvcFacade, journalService portssvc.JournalSvcFacade) {
	ph := newProductHandler(productService)
	jh := newJournalHandler(journalService, productService)

	products := group.Group("/products")
	{
		products.POST("", ph.createProduct)
		products.GET("", ph.listProducts)
		products.GET("/:productID", ph.getProduct)
		products.POST("/:productID/transfer", ph.transferProduct)
		products.POST("/:productID/deliver", ph.markDelivered)
		products.POST("/:productID/deactivate", ph.deactivateProduct)
		products.POST("/:productID/entries", jh.addJournalEntry)
		products.GET("/:productID/entries", jh.listJournalEntries)
		products.GET("/:productID/entries/:entryNumber", jh.getJournalEntry)
	}
}

// respondTransitionError maps custody state machine failures to HTTP statuses.
// Every transition shares the same taxonomy, so all mutation handlers funnel here.
func respondTransitionError(c *gin.Context, logger *slog.Logger, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Product not found", slog.String("action", action))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Caller is not the current owner", slog.String("action", action))
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Only the current owner may perform this operation"})
	case errors.Is(err, apperrors.ErrProductInactive):
		logger.Warn("Product is inactive", slog.String("action", action))
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Product is deactivated"})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate product", slog.String("action", action))
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Product already exists"})
	case errors.Is(err, apperrors.ErrSequenceConflict):
		logger.Warn("Concurrent journal sequence conflict", slog.String("action", action))
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Concurrent update detected, please retry"})
	case errors.Is(err, apperrors.ErrCapacityExceeded):
		logger.Warn("Field capacity exceeded", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger.Error("Transition failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Operation failed"})
	}
}

// createProduct godoc
// @Summary Register a new product
// @Description Creates a product record and writes journal entry 0 ("Product Registration") atomically.
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Product ID already registered"
// @Failure 500 {object} ErrorResponse
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("product_id", req.ProductID))

	product, err := h.productService.CreateProduct(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondTransitionError(c, logger, err, "create")
		return
	}

	logger.Info("Product registered", slog.String("owner", product.CurrentOwner))
	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// getProduct godoc
// @Summary Get a product
// @Description Retrieves the current product record by ID.
// @Tags products
// @Produce json
// @Param productID path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /products/{productID} [get]
func (h *productHandler) getProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")

	product, err := h.productService.GetProductByID(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found"})
			return
		}
		logger.Error("Failed to get product", slog.String("product_id", productID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve product"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// listProducts godoc
// @Summary List products
// @Description Retrieves a paginated list of products, newest first.
// @Tags products
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination cursor from a previous response"
// @Success 200 {object} dto.ListProductsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListProductsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list products"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// transferProduct godoc
// @Summary Transfer custody of a product
// @Description Moves custody to a new owner and appends a journal entry recording the previous owner.
// @Tags products
// @Accept json
// @Produce json
// @Param productID path string true "Product ID"
// @Param transfer body dto.TransferProductRequest true "Transfer details"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Caller is not the current owner"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Product inactive or concurrent update"
// @Failure 500 {object} ErrorResponse
// @Router /products/{productID}/transfer [post]
func (h *productHandler) transferProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")

	var req dto.TransferProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for transferProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	callerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("product_id", productID), slog.String("new_owner", req.NewOwnerID))

	product, err := h.productService.TransferProduct(c.Request.Context(), productID, req, callerUserID)
	if err != nil {
		respondTransitionError(c, logger, err, "transfer")
		return
	}

	logger.Info("Product transferred")
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// markDelivered godoc
// @Summary Mark a product as delivered
// @Description Sets the product status to Delivered at its current location.
// @Tags products
// @Accept json
// @Produce json
// @Param productID path string true "Product ID"
// @Param delivery body dto.MarkDeliveredRequest true "Delivery details"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /products/{productID}/deliver [post]
func (h *productHandler) markDelivered(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")

	var req dto.MarkDeliveredRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	callerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("product_id", productID))

	product, err := h.productService.MarkDelivered(c.Request.Context(), productID, req, callerUserID)
	if err != nil {
		respondTransitionError(c, logger, err, "deliver")
		return
	}

	logger.Info("Product marked delivered")
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// deactivateProduct godoc
// @Summary Deactivate a product
// @Description Terminally deactivates the product. No further mutations are possible afterwards.
// @Tags products
// @Accept json
// @Produce json
// @Param productID path string true "Product ID"
// @Param deactivation body dto.DeactivateProductRequest true "Deactivation details"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already deactivated or concurrent update"
// @Failure 500 {object} ErrorResponse
// @Router /products/{productID}/deactivate [post]
func (h *productHandler) deactivateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")

	var req dto.DeactivateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	callerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("product_id", productID))

	product, err := h.productService.DeactivateProduct(c.Request.Context(), productID, req, callerUserID)
	if err != nil {
		respondTransitionError(c, logger, err, "deactivate")
		return
	}

	logger.Info("Product deactivated")
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}
