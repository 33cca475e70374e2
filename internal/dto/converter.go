package dto

import "github.com/SscSPs/currency_converter/internal/core/domain"

// ConversionRequest asks to convert Value from one currency to another using the
// quotations in effect on Date. A missing date uses the latest quotations.
type ConversionRequest struct {
	CurrencyAbbFrom string   `json:"currency_abb_from" binding:"required,currency_abb" example:"USD"`
	CurrencyAbbTo   string   `json:"currency_abb_to" binding:"required,currency_abb" example:"EUR"`
	Date            *Date    `json:"date,omitempty" swaggertype:"string" example:"2023-01-15"`
	Value           *float64 `json:"value" binding:"required" example:"100"`
}

// ConversionResponse carries both quotations used and the converted value.
type ConversionResponse struct {
	CurrencyQuotationFrom CurrencyQuotationResponse `json:"currency_quotation_from"`
	CurrencyQuotationTo   CurrencyQuotationResponse `json:"currency_quotation_to"`
	Value                 float64                   `json:"value" example:"90.909"`
}

// ToConversionResponse converts a domain.ConversionResult to its DTO.
func ToConversionResponse(r *domain.ConversionResult) ConversionResponse {
	return ConversionResponse{
		CurrencyQuotationFrom: ToCurrencyQuotationResponse(&r.QuotationFrom),
		CurrencyQuotationTo:   ToCurrencyQuotationResponse(&r.QuotationTo),
		Value:                 r.Value.InexactFloat64(),
	}
}
