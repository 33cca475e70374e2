package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/dto"
	"github.com/SscSPs/currency_converter/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) *gin.RouterGroup {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.POST("", h.createCurrency)
		currencies.GET("/:id", h.getCurrency)
		currencies.PUT("/:id", h.updateCurrency)
		currencies.DELETE("/:id", h.deleteCurrency)
	}
	return currencies
}

// listCurrencies godoc
// @Summary List all currencies
// @Description Retrieves a list of all currencies
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {string} string "Failed to list currencies"
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list currencies")
		return
	}

	logger.Info("Currencies listed successfully", slog.Int("count", len(currencies)))
	c.JSON(http.StatusOK, currencies)
}

// getCurrency godoc
// @Summary Get a currency by id
// @Tags currencies
// @Produce  json
// @Param   id path int true "Currency ID"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {string} string "Invalid id"
// @Failure 404 {string} string "Currency not found"
// @Router /currencies/{id} [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var uri dto.CurrencyURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	currency, err := h.currencyService.GetCurrencyByID(c.Request.Context(), uri.ID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve currency")
		return
	}

	c.JSON(http.StatusOK, currency)
}

// createCurrency godoc
// @Summary Create a new currency
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.CurrencyRequest true "Currency details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {string} string "Invalid input or abb already exists"
// @Router /currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	logger.Info("Received request to create currency", slog.String("abb", req.Abb))

	created, err := h.currencyService.CreateCurrency(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create currency")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// updateCurrency godoc
// @Summary Update a currency
// @Description Overwrites abb and name of an existing currency
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   id path int true "Currency ID"
// @Param   currency body dto.CurrencyRequest true "Currency details"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {string} string "Invalid input or abb already exists"
// @Failure 404 {string} string "Currency not found"
// @Router /currencies/{id} [put]
func (h *currencyHandler) updateCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var uri dto.CurrencyURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondWithBindError(c, logger, err)
		return
	}
	var req dto.CurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	updated, err := h.currencyService.UpdateCurrency(c.Request.Context(), uri.ID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update currency")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// deleteCurrency godoc
// @Summary Delete a currency
// @Description Fails while quotations still reference the currency
// @Tags currencies
// @Param   id path int true "Currency ID"
// @Success 204
// @Failure 400 {string} string "Currency still has quotations"
// @Failure 404 {string} string "Currency not found"
// @Router /currencies/{id} [delete]
func (h *currencyHandler) deleteCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var uri dto.CurrencyURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	if err := h.currencyService.DeleteCurrency(c.Request.Context(), uri.ID); err != nil {
		respondWithError(c, logger, err, "Failed to delete currency")
		return
	}

	c.Status(http.StatusNoContent)
}
