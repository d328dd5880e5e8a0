package models

import (
	"errors"
	"strings"
)

type CreateCustomerRequest struct {
	FullName    string `json:"fullName"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
}

func (r CreateCustomerRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.FullName) == "" {
		errs = append(errs, "fullName is required")
	}
	if strings.TrimSpace(r.Address) == "" {
		errs = append(errs, "address is required")
	}
	if strings.TrimSpace(r.PhoneNumber) == "" {
		errs = append(errs, "phoneNumber is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type CreateCustomerResponse struct {
	ID       string `json:"id"`
	LedgerID string `json:"ledgerId"`
}

type CustomerItem struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	LedgerID    string `json:"ledgerId"`
	CreatedAt   string `json:"createdAt"`
}

type SearchCustomersResponse struct {
	Customers  []CustomerItem `json:"customers"`
	Count      int            `json:"count"`
	SearchTerm string         `json:"searchTerm"`
}
