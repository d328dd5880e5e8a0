package service_interfaces

import (
	"context"

	"github.com/api-sage/ledger-accounting-service/internal/adapter/http/models"
	"github.com/api-sage/ledger-accounting-service/internal/commons"
)

type CustomerService interface {
	CreateCustomer(ctx context.Context, req models.CreateCustomerRequest) (commons.Response[models.CreateCustomerResponse], error)
	SearchCustomers(ctx context.Context, value string) (commons.Response[models.SearchCustomersResponse], error)
}
