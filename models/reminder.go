package models

// ReminderPayload is the asynq task body for an appointment reminder.
type ReminderPayload struct {
	BookingID  string `json:"bookingId"`
	Date       string `json:"date"`       // "YYYY-MM-DD"
	StartClock string `json:"startClock"` // "15:04"
	ClientName string `json:"clientName"`
}
