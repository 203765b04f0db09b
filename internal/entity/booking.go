package entity

// Booking is a confirmed reservation of one slot by one user. Event name and
// slot time are denormalized by the backend for display.
type Booking struct {
	ID        int64   `json:"id"`
	EventID   int64   `json:"event_id"`
	SlotID    int64   `json:"slot_id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	CreatedAt UTCTime `json:"created_at"`
	EventName string  `json:"event_name"`
	SlotTime  UTCTime `json:"slot_time"`
}

// AdminProfile is the admin identity returned by a successful login.
type AdminProfile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
