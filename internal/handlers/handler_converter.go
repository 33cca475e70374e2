package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/dto"
	"github.com/SscSPs/currency_converter/internal/middleware"
	"github.com/gin-gonic/gin"
)

type converterHandler struct {
	converter portssvc.ConverterSvc
}

func registerConverterRoutes(rg *gin.RouterGroup, converter portssvc.ConverterSvc) {
	h := &converterHandler{converter: converter}
	rg.POST("/converter", h.convert)
}

// convert godoc
// @Summary Convert an amount between two currencies
// @Description Uses the latest quotation of each currency on or before the given date
// @Description (or the latest overall when no date is given). With consistent=true both
// @Description quotations are read from one snapshot.
// @Tags converter
// @Accept  json
// @Produce  json
// @Param   consistent query bool false "Read both quotations from one snapshot"
// @Param   conversion body dto.ConversionRequest true "Conversion input"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {string} string "Invalid input or no quotation for one side"
// @Router /converter [post]
func (h *converterHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var query dto.ConverterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithBindError(c, logger, err)
		return
	}
	var req dto.ConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	logger = logger.With(
		slog.String("from", req.CurrencyAbbFrom),
		slog.String("to", req.CurrencyAbbTo),
		slog.Bool("consistent", query.Consistent))

	var (
		res *dto.ConversionResponse
		err error
	)
	if query.Consistent {
		res, err = h.converter.ConvertSnapshot(c.Request.Context(), req)
	} else {
		res, err = h.converter.Convert(c.Request.Context(), req)
	}
	if err != nil {
		respondWithError(c, logger, err, "Failed to convert value")
		return
	}

	c.JSON(http.StatusOK, res)
}
