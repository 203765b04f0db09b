package service

import (
	"context"
	"time"

	"github.com/wahe7/book-slots/internal/entity"
	"github.com/wahe7/book-slots/internal/session"
)

type EventService interface {
	ListEvents(ctx context.Context) ([]entity.Event, error)
	GetEvent(ctx context.Context, id int64) (*entity.Event, error)
	CreateEvent(ctx context.Context, form *EventForm, loc *time.Location) (*entity.Event, error)
}

type BookingService interface {
	BookSlot(ctx context.Context, req *BookSlotRequest, loc *time.Location) (*entity.Booking, error)
	UserBookings(ctx context.Context, email string) ([]entity.Booking, error)
}

type AdminService interface {
	Login(ctx context.Context, email, password string) (*session.Session, error)
	Logout(ctx context.Context, sessionID string) error
	CurrentSession(ctx context.Context, sessionID string) (*session.Session, error)
}
