package booking

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	bookingRepo "calmora/database/repository/booking"
	therapistRepo "calmora/database/repository/therapist"
	userRepo "calmora/database/repository/user"
	"calmora/models"
	"calmora/services/tasks"
	"calmora/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the production booking engine.
type DefaultBookingService struct {
	Ledger     SlotLedger
	Payments   PaymentHandler
	Repo       bookingRepo.BookingRepository
	Therapists therapistRepo.TherapistRepository
	Users      userRepo.UserRepository
	Reminders  tasks.ReminderScheduler
	Currency   string
}

// AvailableSlots computes tomorrow's unclaimed slots.
func (s *DefaultBookingService) AvailableSlots() (*AvailabilityResult, error) {
	flow := NewFlow(s.Ledger, s.Payments, s.Currency, utils.GetLogger())
	slots, err := flow.Begin()
	if err != nil {
		return nil, err
	}
	return &AvailabilityResult{Date: flow.Date(), Slots: slots}, nil
}

// Confirm runs one booking attempt end to end.
func (s *DefaultBookingService) Confirm(ctx context.Context, req ConfirmRequest) (*models.BookingConfirmation, error) {
	logger := utils.GetLogger()

	therapist, err := s.Therapists.GetByID(req.TherapistID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch therapist: %w", err)
	}
	if therapist == nil || !therapist.Active {
		return nil, ErrTherapistNotFound
	}

	flow := NewFlow(s.Ledger, s.Payments, s.Currency, logger)
	if _, err := flow.Begin(); err != nil {
		return nil, err
	}
	flow.SelectTherapist(therapist.PublicView())
	if err := flow.SelectSlot(req.Slot); err != nil {
		return nil, err
	}
	flow.SetContact(req.UserID, req.PhoneNumber)

	confirmation, err := flow.Submit(ctx)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:          uuid.New().String(),
		TherapistID: therapist.ID,
		UserID:      req.UserID,
		Date:        confirmation.Date,
		Slot:        confirmation.Slot,
		Amount:      confirmation.Invoice.Amount,
		Status:      models.BookingStatusPaid,
		Invoice:     confirmation.Invoice,
	}
	if err := s.Repo.Create(booking); err != nil {
		// The charge went through; surface the persistence failure rather
		// than silently losing the record.
		logger.Error("failed to persist booking after payment",
			zap.String("invoice", confirmation.Invoice.InvoiceID), zap.Error(err))
		return nil, fmt.Errorf("booking was paid but could not be saved: %w", err)
	}
	confirmation.BookingID = booking.ID

	s.scheduleReminder(booking, therapist.Name)
	s.notifyUser(booking, therapist.Name)

	return confirmation, nil
}

// scheduleReminder enqueues a session reminder an hour before start.
// Best-effort: a scheduling failure never fails the booking.
func (s *DefaultBookingService) scheduleReminder(booking *models.Booking, therapistName string) {
	if s.Reminders == nil {
		return
	}
	start, err := sessionStart(booking.Date, booking.Slot)
	if err != nil {
		utils.GetLogger().Warn("could not compute session start for reminder",
			zap.String("booking", booking.ID), zap.Error(err))
		return
	}

	fireAt := start.Add(-time.Hour)
	payload := models.ReminderPayload{
		ReminderID: uuid.New().String(),
		Target:     "user",
		ID:         booking.UserID,
		Title:      "Upcoming therapy session",
		Body:       fmt.Sprintf("Your session with %s starts at %s.", therapistName, booking.Slot),
		FireDate:   fireAt.Format(time.RFC3339),
	}
	if err := s.Reminders.ScheduleSessionReminder(payload, fireAt); err != nil {
		utils.GetLogger().Warn("failed to schedule session reminder",
			zap.String("booking", booking.ID), zap.Error(err))
	}
}

// notifyUser appends an in-app confirmation notification to the patient.
func (s *DefaultBookingService) notifyUser(booking *models.Booking, therapistName string) {
	if s.Users == nil {
		return
	}
	notification := models.Notification{
		ID:      uuid.New().String(),
		Type:    "booking_confirmation",
		Message: fmt.Sprintf("Your session with %s on %s at %s is confirmed.", therapistName, booking.Date, booking.Slot),
		Data: map[string]interface{}{
			"bookingId": booking.ID,
			"invoiceId": booking.Invoice.InvoiceID,
			"amount":    booking.Amount,
		},
		CreatedAt: time.Now(),
		Read:      false,
	}
	if err := s.Users.PushNotification(booking.UserID, notification); err != nil {
		utils.GetLogger().Warn("failed to push booking notification",
			zap.String("user", booking.UserID), zap.Error(err))
	}
}

// sessionStart resolves a date plus slot label to a wall-clock time.
func sessionStart(date, slot string) (time.Time, error) {
	day, err := time.ParseInLocation(slotDateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid session date %q: %w", date, err)
	}
	hourStr, _, ok := strings.Cut(slot, ":")
	if !ok {
		return time.Time{}, fmt.Errorf("invalid slot label %q", slot)
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid slot label %q: %w", slot, err)
	}
	return day.Add(time.Duration(hour) * time.Hour), nil
}

// GetBooking retrieves a booking by ID.
func (s *DefaultBookingService) GetBooking(id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

// ListForUser lists a patient's bookings.
func (s *DefaultBookingService) ListForUser(userID string) ([]models.Booking, error) {
	return s.Repo.GetByUser(userID)
}

// ListForTherapist lists a therapist's bookings.
func (s *DefaultBookingService) ListForTherapist(therapistID string) ([]models.Booking, error) {
	return s.Repo.GetByTherapist(therapistID)
}

// ListAll lists every booking (admin).
func (s *DefaultBookingService) ListAll() ([]models.Booking, error) {
	return s.Repo.GetAll()
}

// Cancel marks a booking cancelled. Patients may only cancel their own
// bookings; an empty userID bypasses the ownership check (admin path).
func (s *DefaultBookingService) Cancel(id, userID string) error {
	booking, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if booking == nil {
		return ErrBookingNotFound
	}
	if userID != "" && booking.UserID != userID {
		return ErrBookingNotFound
	}
	return s.Repo.UpdateStatus(id, models.BookingStatusCancelled)
}
