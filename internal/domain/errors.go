package domain

import "errors"

// Error taxonomy shared by the services. Handlers map these onto HTTP codes;
// none of them is retried implicitly except ErrVersionConflict, which the
// services retry a bounded number of times before surfacing it.
var (
	ErrInvalidAmount        = errors.New("amount must be a positive value")
	ErrInvalidRate          = errors.New("rate must be within [0, 100)")
	ErrMissingTransactionID = errors.New("transaction id is required")
	ErrUnknownOperation     = errors.New("unknown wallet operation")
	ErrUnknownCallbackState = errors.New("unrecognized callback status")

	ErrVersionConflict = errors.New("wallet version conflict")

	ErrTokenMismatch = errors.New("security token mismatch")

	ErrWalletNotFound      = errors.New("wallet not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrNoCommissionSetting = errors.New("no commission setting configured")

	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrOrderNotPending   = errors.New("order is not pending")
)
