package notification

import (
	"context"

	"glowdesk/models"

	"go.uber.org/zap"
)

// NotificationService defines the outbound client messaging boundary. The
// actual SMS/email senders live outside this codebase; the platform only
// talks to this interface.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, booking models.Booking) error
	SendBookingCancellation(ctx context.Context, booking models.Booking) error
	SendAppointmentReminder(ctx context.Context, booking models.Booking) error
}

// LogNotificationService writes notifications to the log. It stands in for
// the real senders in development and tests.
type LogNotificationService struct {
	Logger *zap.Logger
}

func (s *LogNotificationService) SendBookingConfirmation(_ context.Context, booking models.Booking) error {
	s.Logger.Info("booking confirmation",
		zap.String("bookingID", booking.ID),
		zap.String("client", booking.ClientName),
		zap.String("date", booking.Date))
	return nil
}

func (s *LogNotificationService) SendBookingCancellation(_ context.Context, booking models.Booking) error {
	s.Logger.Info("booking cancellation",
		zap.String("bookingID", booking.ID),
		zap.String("date", booking.Date))
	return nil
}

func (s *LogNotificationService) SendAppointmentReminder(_ context.Context, booking models.Booking) error {
	s.Logger.Info("appointment reminder",
		zap.String("bookingID", booking.ID),
		zap.String("client", booking.ClientName),
		zap.String("date", booking.Date))
	return nil
}
