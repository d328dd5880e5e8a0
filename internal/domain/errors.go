package domain

import "errors"

var ErrInvalidTransactionType = errors.New("Invalid transaction type. Must be CREDIT or DEBIT")
var ErrInvalidAmount = errors.New("Transaction amount must be greater than zero")
