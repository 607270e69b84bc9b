package handlers

import (
	"errors"
	"net/http"

	request "sales_associate/internal/adapter/http/dto/request"
	response "sales_associate/internal/adapter/http/dto/response"
	"sales_associate/internal/usecase"
	"sales_associate/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles the dashboard's read and CRUD requests over quotes
// and proposals, aggregated across all sites.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// ListQuotes serves GET /quotes?site_id=&status=.
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListQuotes(c.Request.Context(), c.Query("site_id"), c.Query("status"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// ListProposals serves GET /proposals?site_id=&status=.
func (h *QuoteHandler) ListProposals(c *gin.Context) {
	proposals, err := h.usecase.ListProposals(c.Request.Context(), c.Query("site_id"), c.Query("status"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProposals(proposals))
}

// GetQuote serves GET /quotes/:id?site_id=. Without site_id the quote is
// routed by its ID prefix.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetQuote(c.Request.Context(), c.Query("site_id"), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// UpdateQuote serves POST /quotes/update.
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	var payload request.QuoteUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	err := h.usecase.UpdateQuote(c.Request.Context(), payload.SiteID, payload.QuoteID, payload.Updates)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.QuoteMutationResponse{Success: true})
}

// DeleteQuote serves POST /quotes/delete.
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	var payload request.QuoteDeleteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	err := h.usecase.DeleteQuote(c.Request.Context(), payload.SiteID, payload.QuoteID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.QuoteMutationResponse{Success: true})
}

// DuplicateQuote serves POST /quotes/duplicate.
func (h *QuoteHandler) DuplicateQuote(c *gin.Context) {
	var payload request.QuoteDuplicateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	newID, err := h.usecase.DuplicateQuote(c.Request.Context(), payload.SiteID, payload.QuoteID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.QuoteMutationResponse{Success: true, NewQuoteID: newID})
}

// ListNotifications serves GET /notifications/:clientId from the dispatch
// ledger.
func (h *QuoteHandler) ListNotifications(c *gin.Context) {
	dispatches, err := h.usecase.ListNotifications(c.Request.Context(), c.Param("clientId"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromNotifications(dispatches))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownSite):
		return pkg.NewDomainErrorSimple("UNKNOWN_SITE", "Unknown site", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrNoUpdates):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
