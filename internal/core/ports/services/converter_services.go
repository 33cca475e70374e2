package services

import (
	"context"

	"github.com/SscSPs/currency_converter/internal/dto"
)

// ConverterSvc converts amounts between currencies using as-of-date quotations.
type ConverterSvc interface {
	// Convert resolves each side in its own session. A concurrent write may land
	// between the two lookups.
	Convert(ctx context.Context, req dto.ConversionRequest) (*dto.ConversionResponse, error)

	// ConvertSnapshot resolves both sides inside one read-only snapshot transaction.
	ConvertSnapshot(ctx context.Context, req dto.ConversionRequest) (*dto.ConversionResponse, error)
}
