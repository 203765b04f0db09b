package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahe7/book-slots/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(&config.BackendConfig{BaseURL: srv.URL, Timeout: 5 * time.Second})
}

func TestEventRepositoryGetAll(t *testing.T) {
	var gotPath, gotAccept string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":1,"name":"Office Hours","description":"weekly","created_by":"Alice","max_bookings_per_slot":2},
			{"id":2,"name":"Demo Day","description":"","created_by":"","max_bookings_per_slot":5}
		]`))
	})

	events, err := NewEventRepository(client).GetAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/events", gotPath)
	assert.Equal(t, "application/json", gotAccept)
	require.Len(t, events, 2)
	assert.Equal(t, "Office Hours", events[0].Name)
	assert.Equal(t, 2, events[0].MaxBookingsPerSlot)
}

func TestEventRepositoryGetByID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events/7", r.URL.Path)
		w.Write([]byte(`{"id":7,"name":"Office Hours","max_bookings_per_slot":2,"slots":[
			{"id":11,"event_id":7,"time":"2025-06-27 00:28:00","available_slots":2,"max_slots":2},
			{"id":12,"event_id":7,"time":"2025-06-28 00:28:00","available_slots":0,"max_slots":2}
		]}`))
	})

	event, err := NewEventRepository(client).GetByID(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, event.Slots, 2)
	assert.Equal(t, time.Date(2025, 6, 27, 0, 28, 0, 0, time.UTC), event.Slots[0].Time.Time)
	assert.Equal(t, 0, event.Slots[1].AvailableSlots)
}

func TestEventRepositoryCreateSendsPayload(t *testing.T) {
	var gotBody CreateEventRequest
	var gotContentType, gotRequestID string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-ID")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":3,"name":"Office Hours"}`))
	})

	ctx := WithRequestID(context.Background(), "req-123")
	req := &CreateEventRequest{
		Name:               "Office Hours",
		CreatedBy:          "Alice",
		MaxBookingsPerSlot: 2,
		Slots:              []string{"2025-06-27T00:28:00Z", "2025-06-28T00:28:00Z"},
	}

	event, err := NewEventRepository(client).Create(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, int64(3), event.ID)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "req-123", gotRequestID)
	assert.Equal(t, []string{"2025-06-27T00:28:00Z", "2025-06-28T00:28:00Z"}, gotBody.Slots)
	assert.Equal(t, 2, gotBody.MaxBookingsPerSlot)
}

func TestBookingRepositoryGetByEmailEscapesPath(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	})

	bookings, err := NewBookingRepository(client).GetByEmail(context.Background(), "user name@example.com")
	require.NoError(t, err)

	// net/http unescapes the path; the %20 round-trips back to a space.
	assert.Equal(t, "/users/user name@example.com/bookings", gotPath)
	assert.Empty(t, bookings)
}

func TestClientReturnsAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":{"detail":"Booking failed","error":"This slot is already fully booked"}}`))
	})

	_, err := NewBookingRepository(client).Create(context.Background(), 7, &CreateBookingRequest{
		Name:   "Bob",
		Email:  "bob@example.com",
		SlotID: 11,
	})

	require.Error(t, err)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "This slot is already fully booked", apiErr.Error())
}

func TestAdminRepositoryLogin(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/login", r.URL.Path)

		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Password == "secret" {
			w.Write([]byte(`{"success":true,"message":"Login successful","admin":{"id":1,"name":"Admin User","email":"admin@example.com"}}`))
			return
		}
		w.Write([]byte(`{"success":false,"message":"Incorrect email or password"}`))
	})

	repo := NewAdminRepository(client)

	resp, err := repo.Login(context.Background(), &LoginRequest{Email: "admin@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Admin)
	assert.Equal(t, "Admin User", resp.Admin.Name)

	resp, err = repo.Login(context.Background(), &LoginRequest{Email: "admin@example.com", Password: "wrong"})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Nil(t, resp.Admin)
}

func TestClientTransportError(t *testing.T) {
	client := NewClient(&config.BackendConfig{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond})

	_, err := NewEventRepository(client).GetAll(context.Background())
	require.Error(t, err)

	_, ok := AsAPIError(err)
	assert.False(t, ok, "transport errors are not APIErrors")
}
