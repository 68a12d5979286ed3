package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "glowdesk/database/repository/booking"
	"glowdesk/models"
	"glowdesk/services/distance"
	"glowdesk/services/notification"
	"glowdesk/services/scheduling"
	"glowdesk/services/tasks"
	"glowdesk/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// BookingService is the reservation orchestrator: it resolves travel,
// consults the scheduling engine, collects deposits and persists bookings.
type BookingService interface {
	Availability(ctx context.Context, req models.BookingRequest) (models.DayAvailability, error)
	QuoteFor(ctx context.Context, req models.BookingRequest) (models.Quote, error)
	Reserve(ctx context.Context, req models.BookingRequest) (*models.Booking, models.Quote, error)
	Cancel(ctx context.Context, id string) error
	Services() []models.ServiceDefinition
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Engine   *scheduling.Engine
	Repo     bookingRepo.BookingRepository
	Payments PaymentHandler
	Notifier notification.NotificationService
	Distance distance.Provider
	// Asynq schedules appointment reminders. Optional; nil disables
	// reminders.
	Asynq  *asynq.Client
	Logger *zap.Logger
}

// Services lists the bookable catalog in its declared order.
func (s *DefaultBookingService) Services() []models.ServiceDefinition {
	return s.Engine.Catalog().List()
}

// resolveTravel turns a client address into distance and travel time. An
// empty address is an in-salon appointment. Provider failures fail the
// request unless the client opted into the on-site fallback.
func (s *DefaultBookingService) resolveTravel(ctx context.Context, req models.BookingRequest) (distance.Travel, error) {
	if req.ClientAddress == "" {
		return distance.Travel{}, nil
	}
	travel, err := s.Distance.Resolve(ctx, req.ClientAddress)
	if err != nil {
		if req.FallbackOnsite {
			s.Logger.Warn("distance lookup failed, falling back to in-salon",
				zap.String("address", req.ClientAddress),
				zap.Error(err))
			return distance.Travel{}, nil
		}
		return distance.Travel{}, err
	}
	return travel, nil
}

// bookingsWindow loads the blocking bookings the engine needs to answer a
// query for this service and date. Multi-day services make the allocator
// walk forward past closed days, so the window covers twice the day count
// plus a week of slack.
func (s *DefaultBookingService) bookingsWindow(ctx context.Context, def models.ServiceDefinition, date string) (map[string][]models.Booking, error) {
	if def.BlocksDays <= 1 {
		existing, err := s.Repo.ListBlockingByDate(ctx, date)
		if err != nil {
			return nil, err
		}
		return map[string][]models.Booking{date: existing}, nil
	}
	day, err := scheduling.ParseDate(date)
	if err != nil {
		return nil, err
	}
	to := day.AddDate(0, 0, def.BlocksDays*2+7).Format(scheduling.DateLayout)
	return s.Repo.ListBlockingBetween(ctx, date, to)
}

// Availability answers "what is free" for one service and date. Answers are
// cached per (service, date, units, travel) and invalidated on every write
// touching the date.
func (s *DefaultBookingService) Availability(ctx context.Context, req models.BookingRequest) (models.DayAvailability, error) {
	def, err := s.Engine.Catalog().Get(req.ServiceID)
	if err != nil {
		return models.DayAvailability{}, err
	}
	travel, err := s.resolveTravel(ctx, req)
	if err != nil {
		return models.DayAvailability{}, err
	}

	var cached models.DayAvailability
	if utils.CachedAvailability(ctx, req.ServiceID, req.Date, req.Units, travel.TravelMinutes, &cached) {
		return cached, nil
	}

	bookings, err := s.bookingsWindow(ctx, def, req.Date)
	if err != nil {
		return models.DayAvailability{}, &scheduling.DependencyError{Dependency: "bookings", Err: err}
	}
	avail, err := s.Engine.SlotsForDay(scheduling.AvailabilityQuery{
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Units:         req.Units,
		TravelMinutes: travel.TravelMinutes,
	}, bookings)
	if err != nil {
		return models.DayAvailability{}, err
	}

	utils.StoreAvailability(ctx, req.ServiceID, req.Date, req.Units, travel.TravelMinutes, avail)
	return avail, nil
}

// QuoteFor prices a request without touching the calendar.
func (s *DefaultBookingService) QuoteFor(ctx context.Context, req models.BookingRequest) (models.Quote, error) {
	travel, err := s.resolveTravel(ctx, req)
	if err != nil {
		return models.Quote{}, err
	}
	return s.Engine.Quote(req.ServiceID, travel.Km, req.Units)
}

// Reserve books a slot: it re-validates the exact start time against fresh
// store data, prices the appointment, collects the deposit and persists the
// booking. Multi-day appointments persist one day-hold per allocated date,
// all sharing a group ID, so conflict detection sees every occupied day.
func (s *DefaultBookingService) Reserve(ctx context.Context, req models.BookingRequest) (*models.Booking, models.Quote, error) {
	def, err := s.Engine.Catalog().Get(req.ServiceID)
	if err != nil {
		return nil, models.Quote{}, err
	}
	travel, err := s.resolveTravel(ctx, req)
	if err != nil {
		return nil, models.Quote{}, err
	}

	bookings, err := s.bookingsWindow(ctx, def, req.Date)
	if err != nil {
		return nil, models.Quote{}, &scheduling.DependencyError{Dependency: "bookings", Err: err}
	}

	start := req.Start
	if def.BlocksFullDay {
		start = s.Engine.Policy().FullDayStartMin
	}
	check, err := s.Engine.CheckSlot(scheduling.AvailabilityQuery{
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Units:         req.Units,
		TravelMinutes: travel.TravelMinutes,
	}, start, bookings)
	if err != nil {
		return nil, models.Quote{}, err
	}
	if !check.Available {
		return nil, models.Quote{}, &NotAvailableError{Reason: check.Reason, ConflictDate: check.ConflictDate}
	}

	quote, err := s.Engine.Quote(req.ServiceID, travel.Km, req.Units)
	if err != nil {
		return nil, models.Quote{}, err
	}

	resolved := def.Resolve(req.Units)
	now := time.Now().UTC()
	booking := models.Booking{
		ID:              uuid.NewString(),
		ServiceID:       req.ServiceID,
		ClientName:      req.ClientName,
		ClientPhone:     req.ClientPhone,
		ClientAddress:   req.ClientAddress,
		Date:            req.Date,
		Start:           start,
		DurationMinutes: resolved.DurationMinutes,
		TravelMinutes:   travel.TravelMinutes,
		DistanceKm:      travel.Km,
		Units:           resolved.Units,
		FullDay:         def.BlocksFullDay,
		BlocksDays:      def.BlocksDays,
		TotalCents:      quote.TotalCents,
		Total:           quote.Total,
		DepositCents:    quote.DepositCents,
		Status:          models.StatusAwaitingDeposit,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	intentID, err := s.Payments.CollectDeposit(ctx, booking, quote)
	if err != nil {
		return nil, models.Quote{}, err
	}
	booking.PaymentIntentID = intentID
	if intentID == "" {
		booking.Status = models.StatusConfirmed
	}

	holds := s.dayHolds(booking, check.Dates)
	if err := s.Repo.Create(ctx, &booking); err != nil {
		s.releaseDeposit(ctx, booking)
		return nil, models.Quote{}, &scheduling.DependencyError{Dependency: "bookings", Err: err}
	}
	for i := range holds {
		if err := s.Repo.Create(ctx, &holds[i]); err != nil {
			s.unwindReserve(ctx, booking, holds[:i])
			return nil, models.Quote{}, &scheduling.DependencyError{Dependency: "bookings", Err: err}
		}
	}

	dates := append([]string{booking.Date}, check.Dates...)
	utils.InvalidateAvailability(ctx, dates...)

	if err := s.Notifier.SendBookingConfirmation(ctx, booking); err != nil {
		s.Logger.Warn("confirmation notification failed",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}
	s.scheduleReminder(booking)
	s.Logger.Info("booking reserved",
		zap.String("bookingID", booking.ID),
		zap.String("serviceID", booking.ServiceID),
		zap.String("date", booking.Date),
		zap.Int("start", booking.Start))
	return &booking, quote, nil
}

// unwindReserve compensates a reservation that failed partway through
// persistence: a booking the client was told failed must not stay on the
// calendar, and the collected deposit must be released. inserted lists the
// day-holds that made it into the store before the failure.
func (s *DefaultBookingService) unwindReserve(ctx context.Context, booking models.Booking, inserted []models.Booking) {
	if err := s.Repo.UpdateStatus(ctx, booking.ID, models.StatusCancelled); err != nil {
		s.Logger.Error("failed reservation left in store, releasing it failed too",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}
	for _, h := range inserted {
		if err := s.Repo.UpdateStatus(ctx, h.ID, models.StatusCancelled); err != nil {
			s.Logger.Error("failed reservation left a day-hold in store, releasing it failed too",
				zap.String("bookingID", h.ID), zap.String("date", h.Date), zap.Error(err))
		}
	}
	s.releaseDeposit(ctx, booking)
}

// releaseDeposit voids the deposit of an aborted reservation. A failure here
// is logged loudly; the money side then needs a manual refund.
func (s *DefaultBookingService) releaseDeposit(ctx context.Context, booking models.Booking) {
	if booking.PaymentIntentID == "" {
		return
	}
	if err := s.Payments.ReleaseDeposit(ctx, booking.PaymentIntentID); err != nil {
		s.Logger.Error("deposit release failed after aborted reservation, refund manually",
			zap.String("bookingID", booking.ID),
			zap.String("paymentIntent", booking.PaymentIntentID),
			zap.Error(err))
	}
}

// scheduleReminder enqueues an appointment reminder for the evening before
// the booking. Same-day and past-dated bookings get no reminder.
func (s *DefaultBookingService) scheduleReminder(booking models.Booking) {
	if s.Asynq == nil {
		return
	}
	day, err := scheduling.ParseDate(booking.Date)
	if err != nil {
		return
	}
	fireAt := day.AddDate(0, 0, -1).Add(18 * time.Hour)
	if !fireAt.After(time.Now()) {
		return
	}
	task, opts, err := tasks.NewReminderTask(models.ReminderPayload{
		BookingID:  booking.ID,
		Date:       booking.Date,
		StartClock: scheduling.FormatClock(booking.Start),
		ClientName: booking.ClientName,
	}, fireAt)
	if err != nil {
		s.Logger.Warn("reminder task build failed",
			zap.String("bookingID", booking.ID), zap.Error(err))
		return
	}
	if _, err := s.Asynq.Enqueue(task, opts...); err != nil {
		s.Logger.Warn("reminder enqueue failed",
			zap.String("bookingID", booking.ID), zap.Error(err))
		return
	}
	s.Logger.Debug("reminder scheduled",
		zap.String("bookingID", booking.ID),
		zap.Time("fireAt", fireAt))
}

// dayHolds builds the follow-on day-hold bookings for a multi-day
// appointment. The first allocated date is the booking itself.
func (s *DefaultBookingService) dayHolds(booking models.Booking, dates []string) []models.Booking {
	if booking.BlocksDays <= 1 || len(dates) < 2 {
		return nil
	}
	booking.GroupID = booking.ID
	holds := make([]models.Booking, 0, len(dates)-1)
	for _, date := range dates[1:] {
		if date == booking.Date {
			continue
		}
		hold := booking
		hold.ID = uuid.NewString()
		hold.Date = date
		hold.TotalCents = 0
		hold.Total = 0
		hold.DepositCents = 0
		hold.PaymentIntentID = ""
		holds = append(holds, hold)
	}
	return holds
}

// Cancel releases a booking and, for multi-day appointments, every
// day-hold in its group. The record stays in the store with a released
// status; slots free up immediately.
func (s *DefaultBookingService) Cancel(ctx context.Context, id string) error {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return &scheduling.DependencyError{Dependency: "bookings", Err: err}
	}
	if b == nil {
		return fmt.Errorf("booking %q: %w", id, scheduling.ErrInvalidInput)
	}
	if err := s.Repo.UpdateStatus(ctx, b.ID, models.StatusCancelled); err != nil {
		return &scheduling.DependencyError{Dependency: "bookings", Err: err}
	}

	dates := []string{b.Date}
	if b.BlocksDays > 1 {
		groupID := b.GroupID
		if groupID == "" {
			groupID = b.ID
		}
		released, err := s.cancelGroup(ctx, groupID, b.ID)
		if err != nil {
			return err
		}
		dates = append(dates, released...)
	}
	utils.InvalidateAvailability(ctx, dates...)

	if err := s.Notifier.SendBookingCancellation(ctx, *b); err != nil {
		s.Logger.Warn("cancellation notification failed",
			zap.String("bookingID", b.ID), zap.Error(err))
	}
	s.Logger.Info("booking cancelled", zap.String("bookingID", b.ID))
	return nil
}

// cancelGroup releases the remaining day-holds of a multi-day group and
// returns the dates they occupied.
func (s *DefaultBookingService) cancelGroup(ctx context.Context, groupID, exceptID string) ([]string, error) {
	holds, err := s.Repo.ListGroup(ctx, groupID)
	if err != nil {
		return nil, &scheduling.DependencyError{Dependency: "bookings", Err: err}
	}
	var dates []string
	for _, h := range holds {
		if h.ID == exceptID {
			continue
		}
		if err := s.Repo.UpdateStatus(ctx, h.ID, models.StatusCancelled); err != nil {
			return nil, &scheduling.DependencyError{Dependency: "bookings", Err: err}
		}
		dates = append(dates, h.Date)
	}
	return dates, nil
}
