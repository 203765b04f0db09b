package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wahe7/book-slots/internal/backend"
	"github.com/wahe7/book-slots/internal/entity"
)

// EventForm is the creation form state as it round-trips through the page.
// Slots holds raw datetime-local values, one per entry, blanks included.
type EventForm struct {
	Name               string
	Description        string
	CreatedBy          string
	MaxBookingsPerSlot int
	Slots              []string
}

// NewEventForm returns the initial form: empty fields, capacity 1, one
// blank slot entry.
func NewEventForm() *EventForm {
	return &EventForm{
		MaxBookingsPerSlot: 1,
		Slots:              []string{""},
	}
}

// AddSlot appends a blank slot entry.
func (f *EventForm) AddSlot() {
	f.Slots = append(f.Slots, "")
}

// RemoveSlot deletes the entry at index i. Removing the last entry is
// allowed; the list may go down to zero.
func (f *EventForm) RemoveSlot(i int) {
	if i < 0 || i >= len(f.Slots) {
		return
	}
	f.Slots = append(f.Slots[:i], f.Slots[i+1:]...)
}

type eventService struct {
	eventRepo backend.EventRepository
}

func NewEventService(eventRepo backend.EventRepository) EventService {
	return &eventService{eventRepo: eventRepo}
}

func (s *eventService) ListEvents(ctx context.Context) ([]entity.Event, error) {
	events, err := s.eventRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	return events, nil
}

func (s *eventService) GetEvent(ctx context.Context, id int64) (*entity.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	return event, nil
}

// CreateEvent validates the form, normalizes every slot value from loc to
// UTC, and submits the event. Validation failures never reach the backend.
func (s *eventService) CreateEvent(ctx context.Context, form *EventForm, loc *time.Location) (*entity.Event, error) {
	if strings.TrimSpace(form.Name) == "" {
		return nil, entity.ErrNameRequired
	}
	if strings.TrimSpace(form.CreatedBy) == "" {
		return nil, entity.ErrCreatorRequired
	}
	if form.MaxBookingsPerSlot < 1 {
		return nil, entity.ErrInvalidCapacity
	}
	if len(form.Slots) == 0 {
		return nil, entity.ErrNoSlots
	}

	slots, err := NormalizeSlots(form.Slots, loc)
	if err != nil {
		return nil, err
	}

	req := &backend.CreateEventRequest{
		Name:               strings.TrimSpace(form.Name),
		Description:        strings.TrimSpace(form.Description),
		CreatedBy:          strings.TrimSpace(form.CreatedBy),
		MaxBookingsPerSlot: form.MaxBookingsPerSlot,
		Slots:              slots,
	}

	event, err := s.eventRepo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// NormalizeSlots converts datetime-local picker values, interpreted in loc,
// to UTC RFC 3339 timestamps for transmission.
func NormalizeSlots(values []string, loc *time.Location) ([]string, error) {
	slots := make([]string, 0, len(values))
	for _, v := range values {
		t, err := ParsePickerTime(v, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", entity.ErrInvalidSlotTime, v)
		}
		slots = append(slots, t.UTC().Format(time.RFC3339))
	}
	return slots, nil
}

// CreationErrorMessage turns a failed event submission into the message the
// page shows. Structured per-slot errors win, each on its own line in
// backend order; otherwise the response's detail or message field; otherwise
// the raw error.
func CreationErrorMessage(err error) string {
	apiErr, ok := backend.AsAPIError(err)
	if !ok {
		return err.Error()
	}
	if len(apiErr.SlotErrors) > 0 {
		lines := make([]string, 0, len(apiErr.SlotErrors))
		for _, se := range apiErr.SlotErrors {
			lines = append(lines, fmt.Sprintf("%s: %s", se.Time, se.Reason))
		}
		return strings.Join(lines, "\n")
	}
	return apiErr.Error()
}
