package controllers

import (
	"log/slog"
	"net/http"

	h "eventmanager/internal/delivery/http/helpers"
	"eventmanager/internal/domain"
)

// CreateEventRequest is the request body for POST /events.
type CreateEventRequest struct {
	Name     *string `json:"name" validate:"required" example:"Launch"`
	Location *string `json:"location" validate:"required" example:"HQ"`
	Date     *string `json:"date" validate:"required" example:"2025-03-01"`
}

// UpdateEventRequest is the request body for PUT /events/{id}. Omitted fields keep their value.
type UpdateEventRequest struct {
	Name     *string `json:"name" example:"Launch"`
	Location *string `json:"location" example:"HQ"`
	Date     *string `json:"date" example:"2025-03-01"`
}

// EventAttendee is an attendee as listed under its event.
type EventAttendee struct {
	ID    int64  `json:"id" example:"1"`
	Name  string `json:"name" example:"Ana"`
	Email string `json:"email" example:"a@x.com"`
}

type EventController struct {
	Logger    *slog.Logger
	Service   domain.EventService
	Attendees domain.AttendeeService
}

func NewEventController(logger *slog.Logger, svc domain.EventService, attendees domain.AttendeeService) *EventController {
	return &EventController{
		Logger:    logger,
		Service:   svc,
		Attendees: attendees,
	}
}

// ListEvents godoc
// @Summary List events
// @Description All events in creation order.
// @Tags events
// @Produce json
// @Success 200 {array} domain.Event
// @Failure 500 {object} helpers.APIError
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		h.WriteServiceError(c.Logger, w, r, err, "event")
		return
	}
	h.WriteJSON(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} domain.Event
// @Failure 400 {object} helpers.APIError "invalid event id"
// @Failure 404 {object} helpers.APIError "event not found"
// @Failure 500 {object} helpers.APIError
// @Router /events/{id} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r, "event")
	if !ok {
		return
	}
	event, err := c.Service.GetEvent(r.Context(), id)
	if err != nil {
		h.WriteServiceError(c.Logger, w, r, err, "event")
		return
	}
	h.WriteJSON(w, http.StatusOK, event)
}

// CreateEvent godoc
// @Summary Create an event
// @Description name, location and date are required; date must be YYYY-MM-DD.
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} domain.Event
// @Failure 400 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), *req.Name, *req.Location, *req.Date)
	if err != nil {
		h.WriteServiceError(c.Logger, w, r, err, "event")
		return
	}
	h.WriteJSON(w, http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Partial update; supplied fields are validated like on create.
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param event body UpdateEventRequest true "Fields to change"
// @Success 200 {object} domain.Event
// @Failure 400 {object} helpers.APIError
// @Failure 404 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r, "event")
	if !ok {
		return
	}
	var req UpdateEventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.UpdateEvent(r.Context(), id, domain.EventUpdate{
		Name:     req.Name,
		Location: req.Location,
		Date:     req.Date,
	})
	if err != nil {
		h.WriteServiceError(c.Logger, w, r, err, "event")
		return
	}
	h.WriteJSON(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes the event and all of its attendees.
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.APIError
// @Failure 404 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r, "event")
	if !ok {
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), id); err != nil {
		h.WriteServiceError(c.Logger, w, r, err, "event")
		return
	}
	h.WriteMessage(w, http.StatusOK, "Event deleted")
}

// ListEventAttendees godoc
// @Summary List an event's attendees
// @Description Unknown events yield an empty list.
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {array} controllers.EventAttendee
// @Failure 400 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /events/{id}/attendees [get]
func (c *EventController) ListEventAttendees(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r, "event")
	if !ok {
		return
	}
	attendees, err := c.Attendees.ListAttendees(r.Context(), &id)
	if err != nil {
		h.WriteServiceError(c.Logger, w, r, err, "event")
		return
	}
	out := make([]EventAttendee, 0, len(attendees))
	for _, a := range attendees {
		out = append(out, EventAttendee{ID: a.ID, Name: a.Name, Email: a.Email})
	}
	h.WriteJSON(w, http.StatusOK, out)
}
