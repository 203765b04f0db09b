package entity

import "errors"

var (
	// Event errors
	ErrEventNotFound   = errors.New("event not found")
	ErrNameRequired    = errors.New("event name is required")
	ErrCreatorRequired = errors.New("creator name is required")
	ErrNoSlots         = errors.New("at least one time slot is required")
	ErrInvalidSlotTime = errors.New("invalid time slot value")
	ErrInvalidCapacity = errors.New("max bookings per slot must be at least 1")

	// Booking errors
	ErrNoSlotSelected = errors.New("no time slot selected")
	ErrSlotNotFound   = errors.New("selected slot not found")
	ErrSlotFull       = errors.New("this time slot is fully booked")
	ErrEmailRequired  = errors.New("email is required")

	// Session errors
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
