package backend

import (
	"context"

	"github.com/wahe7/book-slots/internal/entity"
)

// CreateEventRequest is the wire payload for event creation. Slots are
// UTC-normalized RFC 3339 timestamps.
type CreateEventRequest struct {
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	CreatedBy          string   `json:"created_by"`
	MaxBookingsPerSlot int      `json:"max_bookings_per_slot"`
	Slots              []string `json:"slots"`
}

// CreateBookingRequest is the wire payload for a reservation. SlotTime is a
// human-readable local-time sentence and Timezone the viewer's zone name;
// the backend uses both in the confirmation email.
type CreateBookingRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	SlotID   int64  `json:"slot_id"`
	SlotTime string `json:"slot_time"`
	Timezone string `json:"timezone"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Admin   *entity.AdminProfile `json:"admin"`
}

type EventRepository interface {
	GetAll(ctx context.Context) ([]entity.Event, error)
	GetByID(ctx context.Context, id int64) (*entity.Event, error)
	Create(ctx context.Context, req *CreateEventRequest) (*entity.Event, error)
}

type BookingRepository interface {
	Create(ctx context.Context, eventID int64, req *CreateBookingRequest) (*entity.Booking, error)
	GetByEmail(ctx context.Context, email string) ([]entity.Booking, error)
}

type AdminRepository interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
}
