package dto

import "github.com/SscSPs/currency_converter/internal/core/domain"

// CurrencyRequest is the body of currency create and update calls.
type CurrencyRequest struct {
	Abb  string `json:"abb" binding:"required,currency_abb" example:"USD"`
	Name string `json:"name" binding:"required" example:"US Dollar"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	ID   int64  `json:"id" example:"1"`
	Abb  string `json:"abb" example:"USD"`
	Name string `json:"name" example:"US Dollar"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:   curr.ID,
		Abb:  curr.Abb,
		Name: curr.Name,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
