package commons

import "errors"

var ErrRecordNotFound = errors.New("Record not found")
var ErrLedgerCreationFailed = errors.New("Failed to create ledger")
