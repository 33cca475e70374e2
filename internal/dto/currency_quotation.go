package dto

import "github.com/SscSPs/currency_converter/internal/core/domain"

// CurrencyQuotationRequest is the body of quotation create and update calls.
// A missing date means today.
type CurrencyQuotationRequest struct {
	ExchangeRate float64 `json:"exchange_rate" binding:"required,gt=0,lt=1000000000000000" example:"5.25"`
	Date         *Date   `json:"date,omitempty" swaggertype:"string" example:"2023-01-01"`
}

// CurrencyQuotationResponse defines the data returned for a quotation.
type CurrencyQuotationResponse struct {
	ID           int64   `json:"id" example:"1"`
	CurrencyID   int64   `json:"currency_id" example:"1"`
	ExchangeRate float64 `json:"exchange_rate" example:"5.25"`
	Date         Date    `json:"date" swaggertype:"string" example:"2023-01-01"`
}

// ToCurrencyQuotationResponse converts a domain.CurrencyQuotation to its DTO.
func ToCurrencyQuotationResponse(q *domain.CurrencyQuotation) CurrencyQuotationResponse {
	return CurrencyQuotationResponse{
		ID:           q.ID,
		CurrencyID:   q.CurrencyID,
		ExchangeRate: q.ExchangeRate.InexactFloat64(),
		Date:         NewDate(q.Date),
	}
}

// ToListCurrencyQuotationResponse converts quotations to DTOs.
func ToListCurrencyQuotationResponse(qs []domain.CurrencyQuotation) []CurrencyQuotationResponse {
	res := make([]CurrencyQuotationResponse, len(qs))
	for i := range qs {
		res[i] = ToCurrencyQuotationResponse(&qs[i])
	}
	return res
}
