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

type EventHandler struct {
	events  service.EventService
	display *config.DisplayConfig
	version string
}

func NewEventHandler(events service.EventService, cfg *config.Config) *EventHandler {
	return &EventHandler{
		events:  events,
		display: &cfg.Display,
		version: cfg.Server.AppVersion,
	}
}

// ListEvents renders the home page: one card per event, or the empty state.
// A failed fetch renders a visible error page rather than an empty list.
func (h *EventHandler) ListEvents(c *gin.Context) {
	loc := displayLocation(c, h.display)

	events, err := h.events.ListEvents(c.Request.Context())
	if err != nil {
		c.HTML(http.StatusBadGateway, "error.html", gin.H{
			"Page":     pageContext(c, loc, h.version),
			"Title":    "Error Loading Events",
			"Message":  "Failed to load events. Please try again later.",
			"RetryURL": "/",
		})
		return
	}

	c.HTML(http.StatusOK, "events.html", gin.H{
		"Page":   pageContext(c, loc, h.version),
		"Events": events,
	})
}

// NewEventForm renders the creation page with its initial single blank slot.
func (h *EventHandler) NewEventForm(c *gin.Context) {
	loc := displayLocation(c, h.display)
	h.renderEventForm(c, loc, service.NewEventForm(), http.StatusOK, "", false)
}

// SubmitEventForm handles every POST from the creation page. The op field
// distinguishes slot-list edits (add, remove:<i>) from the final create.
func (h *EventHandler) SubmitEventForm(c *gin.Context) {
	loc := displayLocation(c, h.display)
	form := parseEventForm(c)

	op := c.PostForm("op")
	switch {
	case op == "add":
		form.AddSlot()
		h.renderEventForm(c, loc, form, http.StatusOK, "", false)
		return
	case strings.HasPrefix(op, "remove:"):
		idx, err := strconv.Atoi(strings.TrimPrefix(op, "remove:"))
		if err == nil {
			form.RemoveSlot(idx)
		}
		h.renderEventForm(c, loc, form, http.StatusOK, "", false)
		return
	}

	if _, err := h.events.CreateEvent(c.Request.Context(), form, loc); err != nil {
		h.renderEventForm(c, loc, form, http.StatusBadRequest, service.CreationErrorMessage(err), false)
		return
	}

	// Success notice; the page navigates back to the list after a short delay.
	h.renderEventForm(c, loc, service.NewEventForm(), http.StatusOK, "", true)
}

func (h *EventHandler) renderEventForm(c *gin.Context, loc *time.Location, form *service.EventForm, status int, alert string, success bool) {
	page := pageContext(c, loc, h.version)
	if alert != "" {
		page.Alert = alert
	}
	c.HTML(status, "event_new.html", gin.H{
		"Page":    page,
		"Form":    form,
		"Success": success,
	})
}

// EventDetail renders one event with its slots and the booking form. The
// slot query param carries the single selection.
func (h *EventHandler) EventDetail(c *gin.Context) {
	eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	selected, _ := strconv.ParseInt(c.Query("slot"), 10, 64)

	renderEventDetail(c, h.events, h.display, h.version, eventID, selected, http.StatusOK, "", "", "")
}

func parseEventForm(c *gin.Context) *service.EventForm {
	maxBookings, err := strconv.Atoi(c.PostForm("max_bookings_per_slot"))
	if err != nil || maxBookings < 1 {
		maxBookings = 1
	}
	return &service.EventForm{
		Name:               c.PostForm("name"),
		Description:        c.PostForm("description"),
		CreatedBy:          c.PostForm("created_by"),
		MaxBookingsPerSlot: maxBookings,
		Slots:              c.PostFormArray("slots"),
	}
}

// slotView is one slot card on the detail page, times already shifted into
// the viewer's zone.
type slotView struct {
	ID        int64
	Date      string
	Time      string
	Zone      string
	Available int
	Capacity  int
	Selected  bool
	Full      bool
	ToggleURL string
}

func buildSlotViews(event *entity.Event, selected int64, loc *time.Location) []slotView {
	views := make([]slotView, 0, len(event.Slots))
	for _, slot := range event.Slots {
		parts := service.FormatSlotParts(slot.Time.Time, loc)
		view := slotView{
			ID:        slot.ID,
			Date:      parts.Date,
			Time:      parts.Time,
			Zone:      parts.Zone,
			Available: slot.AvailableSlots,
			Capacity:  event.MaxBookingsPerSlot,
			Selected:  slot.ID == selected,
			Full:      slot.AvailableSlots <= 0,
		}
		if !view.Full {
			view.ToggleURL = toggleURL(event.ID, selected, slot.ID)
		}
		views = append(views, view)
	}
	return views
}

func toggleURL(eventID, selected, slotID int64) string {
	next := service.ToggleSlot(selected, slotID)
	if next == 0 {
		return fmt.Sprintf("/events/%d", eventID)
	}
	return fmt.Sprintf("/events/%d?slot=%d", eventID, next)
}

// renderEventDetail is shared by the detail page and the booking submission,
// which re-renders it with the alert and the preserved form values.
func renderEventDetail(c *gin.Context, events service.EventService, display *config.DisplayConfig, version string, eventID, selected int64, status int, alert, name, email string) {
	loc := displayLocation(c, display)

	event, err := events.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		c.HTML(http.StatusBadGateway, "error.html", gin.H{
			"Page":     pageContext(c, loc, version),
			"Title":    "Error Loading Event",
			"Message":  "Failed to load event details. Please try again later.",
			"RetryURL": fmt.Sprintf("/events/%d", eventID),
		})
		return
	}

	page := pageContext(c, loc, version)
	if alert != "" {
		page.Alert = alert
	}

	c.HTML(status, "event_detail.html", gin.H{
		"Page":     page,
		"Event":    event,
		"Slots":    buildSlotViews(event, selected, loc),
		"Selected": selected,
		"Name":     name,
		"Email":    email,
	})
}
