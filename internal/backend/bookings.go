package backend

import (
	"context"
	"fmt"
	"net/url"

	"github.com/wahe7/book-slots/internal/entity"
)

type bookingRepository struct {
	client *Client
}

func NewBookingRepository(client *Client) BookingRepository {
	return &bookingRepository{client: client}
}

func (r *bookingRepository) Create(ctx context.Context, eventID int64, req *CreateBookingRequest) (*entity.Booking, error) {
	var booking entity.Booking
	path := fmt.Sprintf("/events/%d/bookings", eventID)
	if err := r.client.post(ctx, path, req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) GetByEmail(ctx context.Context, email string) ([]entity.Booking, error) {
	var bookings []entity.Booking
	path := fmt.Sprintf("/users/%s/bookings", url.PathEscape(email))
	if err := r.client.get(ctx, path, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
