package services

import "context"

// ServiceContainer holds instances of all the application services.
// It is the entry point handlers use to reach service functionality.
type ServiceContainer struct {
	Currency          CurrencySvcFacade
	CurrencyQuotation CurrencyQuotationSvcFacade
	Converter         ConverterSvc
	Health            HealthSvc
}

// HealthSvc reports whether the service's dependencies are reachable.
type HealthSvc interface {
	Check(ctx context.Context) error
}
