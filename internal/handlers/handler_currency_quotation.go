package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/dto"
	"github.com/SscSPs/currency_converter/internal/middleware"
	"github.com/gin-gonic/gin"
)

type currencyQuotationHandler struct {
	quotationService portssvc.CurrencyQuotationSvcFacade
}

// registerCurrencyQuotationRoutes nests the quotation routes under a currency group.
func registerCurrencyQuotationRoutes(currencies *gin.RouterGroup, quotationService portssvc.CurrencyQuotationSvcFacade) {
	h := &currencyQuotationHandler{quotationService: quotationService}

	quotations := currencies.Group("/:id/quotations")
	{
		quotations.GET("", h.listQuotations)
		quotations.POST("", h.createQuotation)
		quotations.GET("/:qid", h.getQuotation)
		quotations.PUT("/:qid", h.updateQuotation)
		quotations.DELETE("/:qid", h.deleteQuotation)
	}
}

// listQuotations godoc
// @Summary List the quotations of a currency
// @Tags quotations
// @Produce  json
// @Param   id path int true "Currency ID"
// @Success 200 {array} dto.CurrencyQuotationResponse
// @Failure 400 {string} string "Invalid id"
// @Router /currencies/{id}/quotations [get]
func (h *currencyQuotationHandler) listQuotations(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var uri dto.CurrencyURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	quotations, err := h.quotationService.ListCurrencyQuotations(c.Request.Context(), uri.ID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list quotations")
		return
	}

	c.JSON(http.StatusOK, quotations)
}

// getQuotation godoc
// @Summary Get one quotation of a currency
// @Tags quotations
// @Produce  json
// @Param   id path int true "Currency ID"
// @Param   qid path int true "Quotation ID"
// @Success 200 {object} dto.CurrencyQuotationResponse
// @Failure 400 {string} string "Invalid id"
// @Failure 404 {string} string "Quotation not found"
// @Router /currencies/{id}/quotations/{qid} [get]
func (h *currencyQuotationHandler) getQuotation(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var uri dto.CurrencyQuotationURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	quotation, err := h.quotationService.GetCurrencyQuotationByID(c.Request.Context(), uri.ID, uri.QID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve quotation")
		return
	}

	c.JSON(http.StatusOK, quotation)
}

// createQuotation godoc
// @Summary Record a quotation for a currency
// @Description The date defaults to today. One quotation per currency and date.
// @Tags quotations
// @Accept  json
// @Produce  json
// @Param   id path int true "Currency ID"
// @Param   quotation body dto.CurrencyQuotationRequest true "Quotation details"
// @Success 201 {object} dto.CurrencyQuotationResponse
// @Failure 400 {string} string "Invalid input, unknown currency or duplicate date"
// @Router /currencies/{id}/quotations [post]
func (h *currencyQuotationHandler) createQuotation(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var uri dto.CurrencyURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondWithBindError(c, logger, err)
		return
	}
	var req dto.CurrencyQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	created, err := h.quotationService.CreateCurrencyQuotation(c.Request.Context(), uri.ID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create quotation")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// updateQuotation godoc
// @Summary Update a quotation
// @Tags quotations
// @Accept  json
// @Produce  json
// @Param   id path int true "Currency ID"
// @Param   qid path int true "Quotation ID"
// @Param   quotation body dto.CurrencyQuotationRequest true "Quotation details"
// @Success 200 {object} dto.CurrencyQuotationResponse
// @Failure 400 {string} string "Invalid input or duplicate date"
// @Failure 404 {string} string "Quotation not found"
// @Router /currencies/{id}/quotations/{qid} [put]
func (h *currencyQuotationHandler) updateQuotation(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var uri dto.CurrencyQuotationURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondWithBindError(c, logger, err)
		return
	}
	var req dto.CurrencyQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	updated, err := h.quotationService.UpdateCurrencyQuotation(c.Request.Context(), uri.ID, uri.QID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update quotation")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// deleteQuotation godoc
// @Summary Delete a quotation
// @Tags quotations
// @Param   id path int true "Currency ID"
// @Param   qid path int true "Quotation ID"
// @Success 204
// @Failure 400 {string} string "Invalid id"
// @Failure 404 {string} string "Quotation not found"
// @Router /currencies/{id}/quotations/{qid} [delete]
func (h *currencyQuotationHandler) deleteQuotation(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var uri dto.CurrencyQuotationURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	if err := h.quotationService.DeleteCurrencyQuotation(c.Request.Context(), uri.ID, uri.QID); err != nil {
		respondWithError(c, logger, err, "Failed to delete quotation")
		return
	}

	c.Status(http.StatusNoContent)
}
