package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wahe7/book-slots/internal/backend"
	"github.com/wahe7/book-slots/internal/entity"
)

// BookSlotRequest is the booking form as submitted from the detail page.
type BookSlotRequest struct {
	EventID int64
	SlotID  int64
	Name    string
	Email   string
}

type bookingService struct {
	bookingRepo backend.BookingRepository
	eventRepo   backend.EventRepository
}

func NewBookingService(bookingRepo backend.BookingRepository, eventRepo backend.EventRepository) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
	}
}

// BookSlot submits a reservation. A missing selection is rejected before any
// backend call; a full slot likewise (the backend remains authoritative and
// re-checks capacity on its side).
func (s *bookingService) BookSlot(ctx context.Context, req *BookSlotRequest, loc *time.Location) (*entity.Booking, error) {
	if req.SlotID == 0 {
		return nil, entity.ErrNoSlotSelected
	}

	event, err := s.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}

	slot, ok := event.SlotByID(req.SlotID)
	if !ok {
		return nil, entity.ErrSlotNotFound
	}
	if slot.AvailableSlots <= 0 {
		return nil, entity.ErrSlotFull
	}

	booking, err := s.bookingRepo.Create(ctx, req.EventID, &backend.CreateBookingRequest{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		SlotID:   req.SlotID,
		SlotTime: FormatSlotSentence(slot.Time.Time, loc),
		Timezone: loc.String(),
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) UserBookings(ctx context.Context, email string) ([]entity.Booking, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, entity.ErrEmailRequired
	}

	bookings, err := s.bookingRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	return bookings, nil
}

// ToggleSlot computes the next selection after clicking a slot: clicking the
// selected slot clears the selection, clicking another replaces it. Zero
// means no selection.
func ToggleSlot(current, clicked int64) int64 {
	if current == clicked {
		return 0
	}
	return clicked
}

// BookingErrorMessage turns a failed booking submission into the message the
// page shows: the response's error field, then detail, then message, then
// the raw error.
func BookingErrorMessage(err error) string {
	if apiErr, ok := backend.AsAPIError(err); ok {
		return apiErr.Error()
	}
	return err.Error()
}
