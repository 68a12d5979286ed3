package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"glowdesk/models"
	"glowdesk/services/booking"
	"glowdesk/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var bookingService booking.BookingService

// SetBookingService injects the booking orchestrator the handlers delegate to.
func SetBookingService(svc booking.BookingService) {
	bookingService = svc
}

// respondError maps service errors onto HTTP statuses. Engine rejections are
// client errors; upstream failures (store, distance provider, payments)
// surface as gateway errors.
func respondError(c *gin.Context, err error) {
	logger := getLogger(c)

	var notAvail *booking.NotAvailableError
	if errors.As(err, &notAvail) {
		c.JSON(http.StatusConflict, gin.H{
			"error":        "slot not available",
			"reason":       notAvail.Reason,
			"conflictDate": notAvail.ConflictDate,
		})
		return
	}
	var payErr *booking.PaymentError
	if errors.As(err, &payErr) {
		logger.Error("Deposit collection failed", zap.Error(err))
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "deposit collection failed"})
		return
	}
	var depErr *scheduling.DependencyError
	if errors.As(err, &depErr) {
		logger.Error("Upstream dependency failed",
			zap.String("dependency", depErr.Dependency), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream dependency failed"})
		return
	}
	if errors.Is(err, scheduling.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	logger.Error("Unhandled booking error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// availabilityRequest reads the availability query parameters shared by the
// single-day and range endpoints.
func availabilityRequest(c *gin.Context) models.BookingRequest {
	units, _ := strconv.Atoi(c.Query("units"))
	fallback, _ := strconv.ParseBool(c.Query("fallbackOnsite"))
	return models.BookingRequest{
		ServiceID:      c.Query("serviceId"),
		Date:           c.Query("date"),
		Units:          units,
		ClientAddress:  c.Query("address"),
		FallbackOnsite: fallback,
	}
}

// AvailabilityHandler answers GET /api/availability: the bookable slots for
// one service on one date.
func AvailabilityHandler(c *gin.Context) {
	req := availabilityRequest(c)
	if req.ServiceID == "" || req.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "serviceId and date are required"})
		return
	}

	avail, err := bookingService.Availability(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, avail)
}

// DaysAvailabilityHandler answers GET /api/availability/days: availability
// for a run of consecutive calendar days starting at the given date.
func DaysAvailabilityHandler(c *gin.Context) {
	req := availabilityRequest(c)
	if req.ServiceID == "" || req.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "serviceId and date are required"})
		return
	}
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 1 || days > 31 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be between 1 and 31"})
		return
	}

	start, err := scheduling.ParseDate(req.Date)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]models.DayAvailability, 0, days)
	for i := 0; i < days; i++ {
		dayReq := req
		dayReq.Date = start.AddDate(0, 0, i).Format(scheduling.DateLayout)
		avail, err := bookingService.Availability(c.Request.Context(), dayReq)
		if err != nil {
			respondError(c, err)
			return
		}
		out = append(out, avail)
	}
	c.JSON(http.StatusOK, gin.H{"days": out})
}

// QuoteHandler answers POST /api/quote: a priced proposal with travel fee
// and deposit, without touching the calendar.
func QuoteHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	quote, err := bookingService.QuoteFor(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// CreateBookingHandler answers POST /api/bookings: validates the slot,
// collects the deposit and persists the booking.
func CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if req.ClientName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "clientName is required"})
		return
	}

	booked, quote, err := bookingService.Reserve(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	logger.Info("Booking created",
		zap.String("bookingID", booked.ID),
		zap.String("serviceID", booked.ServiceID),
		zap.String("date", booked.Date))
	c.JSON(http.StatusCreated, gin.H{"booking": booked, "quote": quote})
}

// CancelBookingHandler answers DELETE /api/bookings/:id. Admin only; the
// booking keeps its record but releases every slot it held.
func CancelBookingHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "booking id is required"})
		return
	}

	if err := bookingService.Cancel(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.StatusCancelled, "id": id})
}
