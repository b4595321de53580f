package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/TraceKeep/custody_ledger_app/internal/apperrors"
	portssvc "github.com/TraceKeep/custody_ledger_app/internal/core/ports/services"
	"github.com/TraceKeep/custody_ledger_app/internal/dto"
	"github.com/TraceKeep/custody_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests for a product's journal. Appends go
// through the product service since they are custody transitions; reads go
// through the journal service.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
	productService portssvc.ProductSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(journalService portssvc.JournalSvcFacade, productService portssvc.ProductSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: journalService,
		productService: productService,
	}
}

// addJournalEntry godoc
// @Summary Append a journal entry
// @Description Appends a caller-described event to the product's journal, updating its status label and location.
// @Tags journal
// @Accept json
// @Produce json
// @Param productID path string true "Product ID"
// @Param entry body dto.AddJournalEntryRequest true "Journal entry details"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Caller is not the current owner"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Product inactive or concurrent update"
// @Failure 500 {object} ErrorResponse
// @Router /products/{productID}/entries [post]
func (h *journalHandler) addJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")

	var req dto.AddJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for addJournalEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	callerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("product_id", productID))

	entry, err := h.productService.AddJournalEntry(c.Request.Context(), productID, req, callerUserID)
	if err != nil {
		respondTransitionError(c, logger, err, "add_entry")
		return
	}

	logger.Info("Journal entry appended", slog.Uint64("entry_number", entry.EntryNumber))
	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// listJournalEntries godoc
// @Summary List a product's journal entries
// @Description Retrieves the product's history, ascending by entry number, paginated.
// @Tags journal
// @Produce json
// @Param productID path string true "Product ID"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination cursor from a previous response"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Product not found"
// @Failure 500 {object} ErrorResponse
// @Router /products/{productID}/entries [get]
func (h *journalHandler) listJournalEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")

	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.journalService.ListEntries(c.Request.Context(), productID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list journal entries", slog.String("product_id", productID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list journal entries"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getJournalEntry godoc
// @Summary Get a single journal entry
// @Description Retrieves one journal entry by product ID and entry number.
// @Tags journal
// @Produce json
// @Param productID path string true "Product ID"
// @Param entryNumber path int true "Entry number"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /products/{productID}/entries/{entryNumber} [get]
func (h *journalHandler) getJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")

	entryNumber, err := strconv.ParseUint(c.Param("entryNumber"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Entry number must be a non-negative integer"})
		return
	}

	entry, err := h.journalService.GetEntry(c.Request.Context(), productID, entryNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Journal entry not found"})
			return
		}
		logger.Error("Failed to get journal entry", slog.String("product_id", productID), slog.Uint64("entry_number", entryNumber), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve journal entry"})
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}
