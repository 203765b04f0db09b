package backend

import (
	"context"
	"fmt"

	"github.com/wahe7/book-slots/internal/entity"
)

type eventRepository struct {
	client *Client
}

func NewEventRepository(client *Client) EventRepository {
	return &eventRepository{client: client}
}

func (r *eventRepository) GetAll(ctx context.Context) ([]entity.Event, error) {
	var events []entity.Event
	if err := r.client.get(ctx, "/events", &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*entity.Event, error) {
	var event entity.Event
	if err := r.client.get(ctx, fmt.Sprintf("/events/%d", id), &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Create(ctx context.Context, req *CreateEventRequest) (*entity.Event, error) {
	var event entity.Event
	if err := r.client.post(ctx, "/events", req, &event); err != nil {
		return nil, err
	}
	return &event, nil
}
