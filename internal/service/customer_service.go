// internal/service/customer_service.go
package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	appErrors "github.com/unclebandit/customer-lookup/internal/errors"
	"github.com/unclebandit/customer-lookup/internal/model"
	"github.com/unclebandit/customer-lookup/internal/repository"
)

type CustomerService struct {
	CustomerRepo repository.CustomerRepositoryInterface
	Log          *zap.Logger
}

// GetCustomer resolves the raw path id. Ids that are not integers, like the
// "NaN" a lookup widget sends for non-numeric input, are reported as not found.
func (s *CustomerService) GetCustomer(ctx context.Context, rawID string) (*model.Customer, error) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return nil, appErrors.NewCustomerNotFound(rawID)
	}

	customer, err := s.CustomerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer %d: %w", id, err)
	}
	if customer == nil {
		return nil, appErrors.NewCustomerNotFound(strconv.Itoa(id))
	}

	s.logger().Debug("customer fetched", zap.Int("customer_id", id))
	return customer, nil
}

func (s *CustomerService) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}
