package services

import (
	"context"

	portsrepo "github.com/SscSPs/currency_converter/internal/core/ports/repositories"
)

// HealthService probes the store.
type HealthService struct {
	BaseService
	checker portsrepo.HealthChecker
}

func NewHealthService(checker portsrepo.HealthChecker) *HealthService {
	return &HealthService{checker: checker}
}

func (s *HealthService) Check(ctx context.Context) error {
	if err := s.checker.Ping(ctx); err != nil {
		s.LogError(ctx, err, "Health check failed")
		return err
	}
	return nil
}
