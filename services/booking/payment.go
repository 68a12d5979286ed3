package booking

import (
	"context"
	"fmt"
	"strings"

	"glowdesk/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler collects and releases the booking deposit. The rest of the
// payment flow (capture, refunds of captured money) lives outside this
// codebase.
type PaymentHandler interface {
	CollectDeposit(ctx context.Context, booking models.Booking, quote models.Quote) (string, error)
	// ReleaseDeposit voids an uncaptured deposit when the reservation it
	// was collected for could not be completed.
	ReleaseDeposit(ctx context.Context, paymentIntentID string) error
}

// StripePaymentHandler creates a PaymentIntent for the quoted deposit.
type StripePaymentHandler struct {
	Logger *zap.Logger
}

// CollectDeposit opens a deposit PaymentIntent and returns its ID. The
// deposit amount is already ceiling-rounded by the pricing aggregator and
// never under-collects.
func (h *StripePaymentHandler) CollectDeposit(ctx context.Context, booking models.Booking, quote models.Quote) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(quote.DepositCents),
		Currency:    stripe.String(strings.ToLower(quote.Currency)),
		Description: stripe.String(fmt.Sprintf("Deposit for %s on %s", quote.ServiceID, booking.Date)),
	}
	params.Context = ctx
	params.AddMetadata("bookingId", booking.ID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", &PaymentError{Err: err}
	}
	h.Logger.Info("deposit payment intent created",
		zap.String("bookingID", booking.ID),
		zap.String("paymentIntent", pi.ID),
		zap.Int64("amountCents", quote.DepositCents))
	return pi.ID, nil
}

// ReleaseDeposit cancels the PaymentIntent so the uncaptured deposit never
// charges the client.
func (h *StripePaymentHandler) ReleaseDeposit(ctx context.Context, paymentIntentID string) error {
	params := &stripe.PaymentIntentCancelParams{}
	params.Context = ctx
	if _, err := paymentintent.Cancel(paymentIntentID, params); err != nil {
		return &PaymentError{Err: err}
	}
	h.Logger.Info("deposit payment intent cancelled",
		zap.String("paymentIntent", paymentIntentID))
	return nil
}

// CashPaymentHandler records the deposit as due on arrival. Used when the
// salon runs without online payments.
type CashPaymentHandler struct {
	Logger *zap.Logger
}

func (h *CashPaymentHandler) CollectDeposit(_ context.Context, booking models.Booking, quote models.Quote) (string, error) {
	h.Logger.Info("deposit to be collected in person",
		zap.String("bookingID", booking.ID),
		zap.Int64("amountCents", quote.DepositCents))
	return "", nil
}

// ReleaseDeposit is a no-op: nothing was charged up front.
func (h *CashPaymentHandler) ReleaseDeposit(context.Context, string) error { return nil }
