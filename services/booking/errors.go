package booking

import "fmt"

// NotAvailableError reports a reservation attempt for a slot the engine
// rejected: closed day, out of hours, conflict or multi-day block. It is an
// expected business outcome surfaced with its reason.
type NotAvailableError struct {
	Reason       string
	ConflictDate string
}

func (e *NotAvailableError) Error() string {
	return fmt.Sprintf("not available: %s", e.Reason)
}

// PaymentError reports a failed deposit collection.
type PaymentError struct {
	Err error
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("deposit collection failed: %v", e.Err)
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}
