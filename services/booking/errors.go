package booking

import "errors"

var (
	// ErrMissingContact indicates the booking was submitted without a phone number.
	ErrMissingContact = errors.New("a contact phone number is required")
	// ErrNoSlotSelected indicates the booking was submitted without a chosen slot.
	ErrNoSlotSelected = errors.New("a time slot must be selected")
	// ErrSlotUnavailable indicates the chosen slot is not in the available set.
	ErrSlotUnavailable = errors.New("the selected slot is no longer available")
	// ErrFlowState indicates an operation was attempted in the wrong flow state.
	ErrFlowState = errors.New("booking flow is not in a valid state for this operation")
	// ErrTherapistNotFound indicates the referenced therapist does not exist.
	ErrTherapistNotFound = errors.New("therapist not found")
	// ErrBookingNotFound indicates the referenced booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")
)
