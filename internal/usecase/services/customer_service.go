package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/api-sage/ledger-accounting-service/internal/adapter/http/models"
	"github.com/api-sage/ledger-accounting-service/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/ledger-accounting-service/internal/commons"
	"github.com/api-sage/ledger-accounting-service/internal/domain"
	"github.com/api-sage/ledger-accounting-service/internal/logger"
	"github.com/api-sage/ledger-accounting-service/internal/usecase/service_interfaces"
)

type CustomerService struct {
	customerRepo repo_interfaces.CustomerRepository
}

func NewCustomerService(customerRepo repo_interfaces.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req models.CreateCustomerRequest) (commons.Response[models.CreateCustomerResponse], error) {
	logger.Info("customer service create customer request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("customer service create customer validation failed", err, nil)
		return commons.ErrorResponse[models.CreateCustomerResponse](http.StatusBadRequest, "Details are Incomplete!", err.Error()), err
	}

	customer, ledger, err := s.customerRepo.CreateWithLedger(ctx, domain.Customer{
		FullName:    strings.TrimSpace(req.FullName),
		Address:     strings.TrimSpace(req.Address),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
	})
	if err != nil {
		if errors.Is(err, commons.ErrLedgerCreationFailed) {
			logger.Error("customer service ledger creation failed", err, nil)
			return commons.ErrorResponse[models.CreateCustomerResponse](http.StatusInternalServerError, "Failed to create ledger"), err
		}
		logger.Error("customer service create customer failed", err, nil)
		return commons.ErrorResponse[models.CreateCustomerResponse](http.StatusInternalServerError, "Internal server error. Please try again later."), err
	}

	logger.Info("customer service create customer success", logger.Fields{
		"customerId": customer.ID,
		"ledgerId":   ledger.ID,
	})

	return commons.SuccessResponse(http.StatusCreated, models.CreateCustomerResponse{
		ID:       customer.ID,
		LedgerID: customer.LedgerID,
	}), nil
}

func (s *CustomerService) SearchCustomers(ctx context.Context, value string) (commons.Response[models.SearchCustomersResponse], error) {
	logger.Info("customer service search customers request", logger.Fields{
		"value": value,
	})

	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		err := errors.New("search value is required")
		return commons.ErrorResponse[models.SearchCustomersResponse](http.StatusBadRequest, "Search value is required"), err
	}

	customers, err := s.customerRepo.Search(ctx, trimmed)
	if err != nil {
		logger.Error("customer service search customers failed", err, logger.Fields{
			"value": trimmed,
		})
		return commons.ErrorResponse[models.SearchCustomersResponse](http.StatusInternalServerError, "Search failed"), err
	}

	items := make([]models.CustomerItem, 0, len(customers))
	for _, customer := range customers {
		items = append(items, models.CustomerItem{
			ID:          customer.ID,
			FullName:    customer.FullName,
			Address:     customer.Address,
			PhoneNumber: customer.PhoneNumber,
			LedgerID:    customer.LedgerID,
			CreatedAt:   customer.CreatedAt.Format(time.RFC3339),
		})
	}

	return commons.SuccessResponse(http.StatusOK, models.SearchCustomersResponse{
		Customers:  items,
		Count:      len(items),
		SearchTerm: trimmed,
	}), nil
}

var _ service_interfaces.CustomerService = (*CustomerService)(nil)
