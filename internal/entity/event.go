package entity

// Event is a bookable activity as returned by the backend. The frontend
// never mutates an event after creation.
type Event struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	CreatedBy          string  `json:"created_by"`
	CreatedAt          UTCTime `json:"created_at"`
	MaxBookingsPerSlot int     `json:"max_bookings_per_slot"`
	Slots              []Slot  `json:"slots"`
}

// Slot is a single bookable time within an event. AvailableSlots is derived
// server-side; the frontend only displays it.
type Slot struct {
	ID             int64   `json:"id"`
	EventID        int64   `json:"event_id"`
	Time           UTCTime `json:"time"`
	AvailableSlots int     `json:"available_slots"`
	MaxSlots       int     `json:"max_slots"`
}

// SlotByID returns the slot with the given id, if the event has one.
func (e *Event) SlotByID(id int64) (*Slot, bool) {
	for i := range e.Slots {
		if e.Slots[i].ID == id {
			return &e.Slots[i], true
		}
	}
	return nil, false
}
