package controllers

import (
	"log/slog"
	"net/http"

	h "eventmanager/internal/delivery/http/helpers"
	"eventmanager/internal/domain"
)

// CreateAttendeeRequest is the request body for POST /attendees.
type CreateAttendeeRequest struct {
	Name    *string `json:"name" validate:"required" example:"Ana"`
	Email   *string `json:"email" validate:"required" example:"a@x.com"`
	EventID *int64  `json:"event_id" validate:"required" example:"1"`
}

// UpdateAttendeeRequest is the request body for PUT /attendees/{id}. Omitted fields keep their value.
type UpdateAttendeeRequest struct {
	Name    *string `json:"name" example:"Ana"`
	Email   *string `json:"email" example:"a@x.com"`
	EventID *int64  `json:"event_id" example:"1"`
}

type AttendeeController struct {
	Logger  *slog.Logger
	Service domain.AttendeeService
}

func NewAttendeeController(logger *slog.Logger, svc domain.AttendeeService) *AttendeeController {
	return &AttendeeController{
		Logger:  logger,
		Service: svc,
	}
}

// ListAttendees godoc
// @Summary List attendees
// @Description All attendees, or only those of event_id when given.
// @Tags attendees
// @Produce json
// @Param event_id query int false "Filter by event ID"
// @Success 200 {array} domain.Attendee
// @Failure 400 {object} helpers.APIError "event_id must be an integer"
// @Failure 500 {object} helpers.APIError
// @Router /attendees [get]
func (c *AttendeeController) ListAttendees(w http.ResponseWriter, r *http.Request) {
	eventID, ok := h.QueryID(w, r, "event_id")
	if !ok {
		return
	}
	attendees, err := c.Service.ListAttendees(r.Context(), eventID)
	if err != nil {
		h.WriteServiceError(c.Logger, w, r, err, "attendee")
		return
	}
	h.WriteJSON(w, http.StatusOK, attendees)
}

// GetAttendee godoc
// @Summary Get an attendee by ID
// @Tags attendees
// @Produce json
// @Param id path int true "Attendee ID"
// @Success 200 {object} domain.Attendee
// @Failure 400 {object} helpers.APIError
// @Failure 404 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /attendees/{id} [get]
func (c *AttendeeController) GetAttendee(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r, "attendee")
	if !ok {
		return
	}
	a, err := c.Service.GetAttendee(r.Context(), id)
	if err != nil {
		h.WriteServiceError(c.Logger, w, r, err, "attendee")
		return
	}
	h.WriteJSON(w, http.StatusOK, a)
}

// CreateAttendee godoc
// @Summary Add an attendee to an event
// @Description event_id must reference an existing event. A confirmation email is sent best-effort.
// @Tags attendees
// @Accept json
// @Produce json
// @Param attendee body CreateAttendeeRequest true "Attendee data"
// @Success 201 {object} domain.Attendee
// @Failure 400 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /attendees [post]
func (c *AttendeeController) CreateAttendee(w http.ResponseWriter, r *http.Request) {
	var req CreateAttendeeRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	a, err := c.Service.CreateAttendee(r.Context(), *req.Name, *req.Email, *req.EventID)
	if err != nil {
		h.WriteServiceError(c.Logger, w, r, err, "attendee")
		return
	}
	h.WriteJSON(w, http.StatusCreated, a)
}

// UpdateAttendee godoc
// @Summary Update an attendee
// @Tags attendees
// @Accept json
// @Produce json
// @Param id path int true "Attendee ID"
// @Param attendee body UpdateAttendeeRequest true "Fields to change"
// @Success 200 {object} domain.Attendee
// @Failure 400 {object} helpers.APIError
// @Failure 404 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /attendees/{id} [put]
func (c *AttendeeController) UpdateAttendee(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r, "attendee")
	if !ok {
		return
	}
	var req UpdateAttendeeRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	a, err := c.Service.UpdateAttendee(r.Context(), id, domain.AttendeePatch{
		Name:    req.Name,
		Email:   req.Email,
		EventID: req.EventID,
	})
	if err != nil {
		h.WriteServiceError(c.Logger, w, r, err, "attendee")
		return
	}
	h.WriteJSON(w, http.StatusOK, a)
}

// DeleteAttendee godoc
// @Summary Remove an attendee
// @Tags attendees
// @Produce json
// @Param id path int true "Attendee ID"
// @Success 200 {object} helpers.MessageResponse
// @Failure 400 {object} helpers.APIError
// @Failure 404 {object} helpers.APIError
// @Failure 500 {object} helpers.APIError
// @Router /attendees/{id} [delete]
func (c *AttendeeController) DeleteAttendee(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r, "attendee")
	if !ok {
		return
	}
	if err := c.Service.DeleteAttendee(r.Context(), id); err != nil {
		h.WriteServiceError(c.Logger, w, r, err, "attendee")
		return
	}
	h.WriteMessage(w, http.StatusOK, "Attendee removed")
}
