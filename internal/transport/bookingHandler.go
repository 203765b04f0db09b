package transport

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wahe7/book-slots/config"
	"github.com/wahe7/book-slots/internal/entity"
	"github.com/wahe7/book-slots/internal/service"
)

type BookingHandler struct {
	bookings service.BookingService
	events   service.EventService
	display  *config.DisplayConfig
	version  string
}

func NewBookingHandler(bookings service.BookingService, events service.EventService, cfg *config.Config) *BookingHandler {
	return &BookingHandler{
		bookings: bookings,
		events:   events,
		display:  &cfg.Display,
		version:  cfg.Server.AppVersion,
	}
}

// BookSlot submits the reservation form. Success redirects back to the
// detail page (a fresh fetch, so availability reflects the booking, and the
// form comes back cleared); failure re-renders the page with the alert and
// the entered values preserved.
func (h *BookingHandler) BookSlot(c *gin.Context) {
	eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	slotID, _ := strconv.ParseInt(c.PostForm("slot_id"), 10, 64)
	name := c.PostForm("name")
	email := c.PostForm("email")
	loc := displayLocation(c, h.display)

	req := &service.BookSlotRequest{
		EventID: eventID,
		SlotID:  slotID,
		Name:    name,
		Email:   email,
	}

	if _, err := h.bookings.BookSlot(c.Request.Context(), req, loc); err != nil {
		msg := service.BookingErrorMessage(err)
		if err == entity.ErrNoSlotSelected {
			msg = "Please select a time slot"
		}
		renderEventDetail(c, h.events, h.display, h.version, eventID, slotID, http.StatusBadRequest, msg, name, email)
		return
	}

	setFlash(c, "Booking successful! You'll receive a confirmation email shortly.")
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/events/%d", eventID))
}

// UserBookings renders the lookup page: idle without an email, otherwise the
// bookings for the submitted address. Looking up an address with no bookings
// is an empty list, not an error.
func (h *BookingHandler) UserBookings(c *gin.Context) {
	loc := displayLocation(c, h.display)
	email := strings.TrimSpace(c.Query("email"))

	data := gin.H{
		"Page":     pageContext(c, loc, h.version),
		"Email":    email,
		"Searched": false,
	}

	if email == "" {
		c.HTML(http.StatusOK, "bookings.html", data)
		return
	}

	bookings, err := h.bookings.UserBookings(c.Request.Context(), email)
	if err != nil {
		page := data["Page"].(PageContext)
		page.Alert = "Failed to load bookings. Please try again."
		data["Page"] = page
		c.HTML(http.StatusBadGateway, "bookings.html", data)
		return
	}

	data["Searched"] = true
	data["Bookings"] = buildBookingViews(bookings, loc)
	c.HTML(http.StatusOK, "bookings.html", data)
}

// bookingView is one row of the lookup result list, timestamps formatted
// independently so one bad value cannot blank the other.
type bookingView struct {
	EventName string
	BookedAt  string
	SlotTime  string
}

func buildBookingViews(bookings []entity.Booking, loc *time.Location) []bookingView {
	views := make([]bookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, bookingView{
			EventName: b.EventName,
			BookedAt:  service.FormatBookingTime(b.CreatedAt.Time, loc),
			SlotTime:  service.FormatBookingTime(b.SlotTime.Time, loc),
		})
	}
	return views
}
